package picker

import (
	"errors"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lexiquiz/internal/lesson"
)

const (
	maxVisibleRows = 15
	// headerHeight covers the header row and its bottom border.
	headerHeight = 2
)

// ErrCancelled indicates the user left the picker without choosing.
var ErrCancelled = errors.New("lesson selection cancelled")

// Options configures the picker.
type Options struct {
	NoColor bool
	Input   io.Reader
	Output  io.Writer
}

// Model is a Bubble Tea model listing lessons in a selectable table.
type Model struct {
	table     table.Model
	count     int
	selected  int
	cancelled bool
	noColor   bool
}

// NewModel builds a picker over lessons, in the order given.
func NewModel(lessons []*lesson.Lesson, opts Options) Model {
	rows := make([]table.Row, 0, len(lessons))
	for i, l := range lessons {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			l.DisplayName(),
			l.Meta.Left + " / " + l.Meta.Right,
			strconv.Itoa(l.Questions()),
		})
	}
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows), maxVisibleRows)+headerHeight),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		table:    t,
		count:    len(rows),
		selected: -1,
		noColor:  opts.NoColor,
	}
}

// Init has no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles selection keys and forwards navigation to the table.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(min(m.count+headerHeight, typed.Height-4), headerHeight+1))
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "enter":
			if m.count > 0 {
				m.selected = m.table.Cursor()
			}
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m Model) View() string {
	if m.selected >= 0 || m.cancelled {
		return ""
	}
	title := stylize("Which lesson do you want to practice?", m.noColor, lipgloss.NewStyle().Bold(true))
	help := stylize("↑/↓ move • enter select • q quit", m.noColor, lipgloss.NewStyle().Foreground(lipgloss.Color("242")))
	return lipgloss.JoinVertical(lipgloss.Left, title, m.table.View(), help) + "\n"
}

// Selected returns the chosen lesson index.
func (m Model) Selected() (int, bool) {
	if m.cancelled || m.selected < 0 {
		return 0, false
	}
	return m.selected, true
}

// Run shows the picker and returns the index of the chosen lesson.
func Run(lessons []*lesson.Lesson, opts Options) (int, error) {
	var programOpts []tea.ProgramOption
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	final, err := tea.NewProgram(NewModel(lessons, opts), programOpts...).Run()
	if err != nil {
		return 0, err
	}
	model, ok := final.(Model)
	if !ok {
		return 0, ErrCancelled
	}
	index, ok := model.Selected()
	if !ok {
		return 0, ErrCancelled
	}
	return index, nil
}

func stylize(text string, noColor bool, style lipgloss.Style) string {
	if noColor {
		return text
	}
	return style.Render(text)
}
