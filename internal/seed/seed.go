// Package seed loads the fixed list of events the store starts with.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/Shivanand-hulikatti/community-events/internal/model"
	"github.com/pelletier/go-toml/v2"
)

//go:embed events.toml
var defaultSeed []byte

type file struct {
	Events []model.Event `toml:"events"`
}

// Source yields seed events.
type Source interface {
	List(ctx context.Context) ([]model.Event, error)
}

// Parse decodes a TOML seed document.
func Parse(data []byte) ([]model.Event, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return f.Events, nil
}

// Default returns the built-in seed list.
func Default() []model.Event {
	events, err := Parse(defaultSeed)
	if err != nil {
		panic(err)
	}
	return events
}

// File reads seed events from a TOML file on disk.
type File struct {
	Path string
}

// List implements Source.
func (f File) List(_ context.Context) ([]model.Event, error) {
	if f.Path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}
