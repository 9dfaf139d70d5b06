package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wheelpick/go-wheelpick/config"
	"github.com/wheelpick/go-wheelpick/internal/assert"
	"github.com/wheelpick/go-wheelpick/wheelpick"
)

const fullDocument = `
initial_time: "09:00"
min_time: "08:30"
max_time:
  offset_minutes: 120
  round_up: true
minute_interval: 15
use_12_hour: true
disabled_hours: [12, 13]
presets: ["09:00", "10:30"]
preset_step: 60
show_presets: true
`

func TestParse(t *testing.T) {
	opts, err := config.Parse([]byte(fullDocument))
	assert.NoError(t, err)

	assert.Equal(t, opts.InitialTime, "09:00")
	assert.Equal(t, opts.MinuteInterval, 15)
	assert.True(t, opts.Use12Hour)
	assert.Equal(t, opts.DisabledHours, []int{12, 13})
	assert.Equal(t, opts.Presets, []string{"09:00", "10:30"})
	assert.Equal(t, opts.PresetStep, 60)
	assert.True(t, opts.ShowPresets)

	// scalar bound parses as fixed
	assert.False(t, opts.Min.IsRelative())
	now := time.Date(2020, 1, 1, 10, 50, 0, 0, time.UTC)
	assert.Equal(t, opts.Min.Resolve(now, 15), wheelpick.ClockTime{Hour: 8, Minute: 30})

	// mapping bound parses as relative: 10:50 + 120m = 12:50, rounded
	// up to the 15-minute grid
	assert.True(t, opts.Max.IsRelative())
	assert.Equal(t, opts.Max.Resolve(now, 15), wheelpick.ClockTime{Hour: 13, Minute: 0})
}

func TestParseEmptyDocument(t *testing.T) {
	opts, err := config.Parse([]byte(""))
	assert.NoError(t, err)
	assert.Equal(t, opts.Min, nil)
	assert.Equal(t, opts.Max, nil)
	assert.Equal(t, opts.InitialTime, "")
}

func TestParseInvalidBoundKind(t *testing.T) {
	_, err := config.Parse([]byte("min_time: [1, 2]"))
	assert.NotEqual(t, err, nil)
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{"negative interval", "minute_interval: -5"},
		{"negative preset step", "preset_step: -1"},
		{"disabled hour too large", "disabled_hours: [24]"},
		{"disabled hour negative", "disabled_hours: [-1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.document))
			assert.NotEqual(t, err, nil)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picker.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(fullDocument), 0o644))

	opts, err := config.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, opts.InitialTime, "09:00")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NotEqual(t, err, nil)
}
