// Package config loads typewriter scenes: a list of independently animated
// lines plus shared rendering options, stored as YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/typewriter/engine"
)

const (
	DefaultTypingSpeed   = 100 * time.Millisecond
	DefaultDeletingSpeed = 50 * time.Millisecond
	DefaultPause         = time.Second
)

var ErrNoLines = errors.New("scene has no lines")

// Line is one animated string.
type Line struct {
	Text          string         `yaml:"text"`
	TypingSpeed   *time.Duration `yaml:"typing_speed"`
	DeletingSpeed *time.Duration `yaml:"deleting_speed"`
	Pause         *time.Duration `yaml:"pause"`
	Loop          bool           `yaml:"loop"`
}

type Scene struct {
	Lines   []Line `yaml:"lines"`
	Cursor  string `yaml:"cursor"`
	Reserve bool   `yaml:"reserve"`
}

// EngineConfig fills omitted durations with the package defaults.
func (l Line) EngineConfig() engine.Config {
	return engine.Config{
		Text:          l.Text,
		TypingSpeed:   durationOr(l.TypingSpeed, DefaultTypingSpeed),
		DeletingSpeed: durationOr(l.DeletingSpeed, DefaultDeletingSpeed),
		PauseDuration: durationOr(l.Pause, DefaultPause),
		Loop:          l.Loop,
	}
}

func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	scene, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return scene, nil
}

func Parse(data []byte) (*Scene, error) {
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return &scene, nil
}

func (s *Scene) Validate() error {
	if len(s.Lines) == 0 {
		return ErrNoLines
	}
	for i, line := range s.Lines {
		if err := line.EngineConfig().Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
	}
	return nil
}

func durationOr(d *time.Duration, def time.Duration) time.Duration {
	if d == nil {
		return def
	}
	return *d
}
