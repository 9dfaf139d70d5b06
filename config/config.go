// Package config loads picker options from a YAML document. Bound
// specs are written either as an "HH:MM" scalar or as a mapping with
// offset_minutes/round_up keys for wall-clock relative bounds.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wheelpick/go-wheelpick/wheelpick"
)

// File is the YAML form of wheelpick.Options. Callback, predicate and
// capability fields have no file representation and are set by the
// embedder on the returned options.
type File struct {
	InitialTime    string     `yaml:"initial_time"`
	MinTime        *BoundSpec `yaml:"min_time"`
	MaxTime        *BoundSpec `yaml:"max_time"`
	MinuteInterval int        `yaml:"minute_interval"`
	Use12Hour      bool       `yaml:"use_12_hour"`
	DisabledHours  []int      `yaml:"disabled_hours"`
	Presets        []string   `yaml:"presets"`
	PresetStep     int        `yaml:"preset_step"`
	ShowPresets    bool       `yaml:"show_presets"`
}

// BoundSpec is the YAML union of a fixed "HH:MM" bound and a relative
// descriptor.
type BoundSpec struct {
	fixed    string
	relative *relativeSpec
}

type relativeSpec struct {
	OffsetMinutes int  `yaml:"offset_minutes"`
	RoundUp       bool `yaml:"round_up"`
}

// UnmarshalYAML accepts either a scalar time string or a relative
// mapping.
func (b *BoundSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		b.fixed = node.Value
		return nil
	case yaml.MappingNode:
		b.relative = &relativeSpec{}
		return node.Decode(b.relative)
	default:
		return fmt.Errorf("bound must be an HH:MM string or a relative mapping, got %v", node.Kind)
	}
}

// Bound converts the spec to its engine representation.
func (b *BoundSpec) Bound() wheelpick.Bound {
	if b == nil {
		return nil
	}
	if b.relative != nil {
		return wheelpick.NewRelativeBound(b.relative.OffsetMinutes, b.relative.RoundUp)
	}
	return wheelpick.NewFixedBound(b.fixed)
}

// Load reads and parses picker options from the YAML file at path.
func Load(path string) (wheelpick.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return wheelpick.Options{}, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse parses picker options from a YAML document.
func Parse(data []byte) (wheelpick.Options, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return wheelpick.Options{}, fmt.Errorf("parsing config file: %w", err)
	}
	if err := file.validate(); err != nil {
		return wheelpick.Options{}, err
	}
	return wheelpick.Options{
		InitialTime:    file.InitialTime,
		Min:            file.MinTime.Bound(),
		Max:            file.MaxTime.Bound(),
		MinuteInterval: file.MinuteInterval,
		Use12Hour:      file.Use12Hour,
		DisabledHours:  file.DisabledHours,
		Presets:        file.Presets,
		PresetStep:     file.PresetStep,
		ShowPresets:    file.ShowPresets,
	}, nil
}

func (f *File) validate() error {
	if f.MinuteInterval < 0 {
		return fmt.Errorf("minute_interval must not be negative, got %d", f.MinuteInterval)
	}
	if f.PresetStep < 0 {
		return fmt.Errorf("preset_step must not be negative, got %d", f.PresetStep)
	}
	for _, hour := range f.DisabledHours {
		if hour < 0 || hour > 23 {
			return fmt.Errorf("disabled hour out of range: %d", hour)
		}
	}
	return nil
}
