package lesson

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyMeta indicates the metadata file has no YAML document.
var ErrEmptyMeta = errors.New("metadata file is empty")

// LoadMeta reads, parses, and validates a lesson metadata file.
func LoadMeta(path string) (Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Meta{}, fmt.Errorf("read lesson metadata: %w", err)
	}
	meta, err := parseMeta(data)
	if err != nil {
		return Meta{}, err
	}
	return normalizeMeta(meta)
}

func parseMeta(data []byte) (Meta, error) {
	var meta Meta
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&meta); err != nil {
		if err == io.EOF {
			return Meta{}, ErrEmptyMeta
		}
		return Meta{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Meta{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Meta{}, fmt.Errorf("parse yaml: %w", err)
	}
	return meta, nil
}

func normalizeMeta(meta Meta) (Meta, error) {
	collector := &issueCollector{file: MetaFileName}
	meta.Name = strings.TrimSpace(meta.Name)
	meta.Left = strings.TrimSpace(meta.Left)
	meta.Right = strings.TrimSpace(meta.Right)
	if meta.Left == "" {
		collector.add("left", "is required")
	}
	if meta.Right == "" {
		collector.add("right", "is required")
	}
	if err := collector.result(); err != nil {
		return Meta{}, err
	}
	return meta, nil
}
