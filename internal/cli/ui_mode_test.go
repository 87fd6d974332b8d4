package cli

import (
	"io"
	"testing"
)

// TestResolveUIMode verifies ui mode decision logic.
func TestResolveUIMode(t *testing.T) {
	cases := []struct {
		name       string
		mode       string
		isTTY      bool
		expectLive bool
		wantWarn   bool
		wantErr    bool
	}{
		{name: "auto tty", mode: "auto", isTTY: true, expectLive: true},
		{name: "auto non-tty", mode: "auto", isTTY: false, expectLive: false},
		{name: "empty means auto", mode: "", isTTY: true, expectLive: true},
		{name: "plain", mode: "plain", isTTY: true, expectLive: false},
		{name: "mixed case", mode: " Live ", isTTY: true, expectLive: true},
		{name: "live tty", mode: "live", isTTY: true, expectLive: true},
		{name: "live non-tty warning", mode: "live", isTTY: false, expectLive: false, wantWarn: true},
		{name: "invalid mode", mode: "nope", isTTY: true, wantErr: true},
	}

	original := isTerminal
	t.Cleanup(func() { isTerminal = original })

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			isTerminal = func(_ io.Writer) bool { return tc.isTTY }
			decision, err := resolveUIMode(tc.mode, nil)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decision.useLive != tc.expectLive {
				t.Fatalf("expected useLive=%v, got %v", tc.expectLive, decision.useLive)
			}
			if tc.wantWarn && decision.warning == "" {
				t.Fatalf("expected warning")
			}
			if !tc.wantWarn && decision.warning != "" {
				t.Fatalf("did not expect warning")
			}
		})
	}
}

// TestUseColor verifies color is only used on a real terminal.
func TestUseColor(t *testing.T) {
	cases := []struct {
		name    string
		noColor bool
		env     string
		term    string
		isTTY   bool
		want    bool
	}{
		{name: "tty", isTTY: true, term: "xterm", want: true},
		{name: "not a tty", isTTY: false, term: "xterm", want: false},
		{name: "flag", noColor: true, isTTY: true, term: "xterm", want: false},
		{name: "NO_COLOR", env: "1", isTTY: true, term: "xterm", want: false},
		{name: "dumb terminal", isTTY: true, term: "dumb", want: false},
	}

	original := isTerminal
	t.Cleanup(func() { isTerminal = original })

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tc.env)
			t.Setenv("TERM", tc.term)
			isTerminal = func(_ io.Writer) bool { return tc.isTTY }
			if got := useColor(tc.noColor, nil); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
