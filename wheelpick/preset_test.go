package wheelpick_test

import (
	"testing"

	"github.com/wheelpick/go-wheelpick/internal/assert"
	"github.com/wheelpick/go-wheelpick/wheelpick"
)

func presetStrings(presets []wheelpick.ClockTime) []string {
	out := make([]string, len(presets))
	for i, p := range presets {
		out[i] = p.String()
	}
	return out
}

func newTestPicker(t *testing.T, opts wheelpick.Options) *wheelpick.Picker {
	t.Helper()
	picker, err := wheelpick.New(&fakeWheel{}, &fakeWheel{}, opts)
	assert.NoError(t, err)
	return picker
}

func TestGeneratedPresetLadder(t *testing.T) {
	picker := newTestPicker(t, wheelpick.Options{
		Min:        wheelpick.NewFixedBound("09:00"),
		Max:        wheelpick.NewFixedBound("10:00"),
		PresetStep: 30,
	})
	picker.Open()
	defer picker.Close()

	assert.Equal(t, presetStrings(picker.Presets()), []string{"09:00", "09:30", "10:00"})
}

func TestGeneratedPresetLadderStepsPastMax(t *testing.T) {
	picker := newTestPicker(t, wheelpick.Options{
		Min:        wheelpick.NewFixedBound("09:00"),
		Max:        wheelpick.NewFixedBound("09:50"),
		PresetStep: 30,
	})
	picker.Open()
	defer picker.Close()

	// the last entry is the final value at or before max, never beyond
	assert.Equal(t, presetStrings(picker.Presets()), []string{"09:00", "09:30"})
}

func TestExplicitPresetsVerbatim(t *testing.T) {
	picker := newTestPicker(t, wheelpick.Options{
		Min:     wheelpick.NewFixedBound("09:00"),
		Max:     wheelpick.NewFixedBound("17:00"),
		Presets: []string{"12:00", "08:00", "18:00"},
	})
	picker.Open()
	defer picker.Close()

	// explicit presets win over generation: order preserved, no
	// filtering at generation time
	assert.Equal(t, presetStrings(picker.Presets()), []string{"12:00", "08:00", "18:00"})
	// filtering happens in ValidPresets
	assert.Equal(t, presetStrings(picker.ValidPresets()), []string{"12:00"})
}

func TestPresetsAbsentBound(t *testing.T) {
	picker := newTestPicker(t, wheelpick.Options{
		Min: wheelpick.NewFixedBound("09:00"),
	})
	picker.Open()
	defer picker.Close()

	assert.Equal(t, len(picker.Presets()), 0)
}

func TestValidPresetsInvertedBounds(t *testing.T) {
	picker := newTestPicker(t, wheelpick.Options{
		Min: wheelpick.NewFixedBound("18:00"),
		Max: wheelpick.NewFixedBound("08:00"),
	})
	picker.Open()
	defer picker.Close()

	assert.Equal(t, len(picker.ValidPresets()), 0)
}

func TestValidPresetsDropDisabledHours(t *testing.T) {
	picker := newTestPicker(t, wheelpick.Options{
		Min:           wheelpick.NewFixedBound("11:00"),
		Max:           wheelpick.NewFixedBound("13:00"),
		PresetStep:    60,
		DisabledHours: []int{12},
	})
	picker.Open()
	defer picker.Close()

	assert.Equal(t, presetStrings(picker.Presets()), []string{"11:00", "12:00", "13:00"})
	assert.Equal(t, presetStrings(picker.ValidPresets()), []string{"11:00", "13:00"})
}

func TestPresetColumns(t *testing.T) {
	picker := newTestPicker(t, wheelpick.Options{
		Min:        wheelpick.NewFixedBound("09:00"),
		Max:        wheelpick.NewFixedBound("10:00"),
		PresetStep: 30,
	})
	picker.Open()
	defer picker.Close()

	columns := picker.PresetColumns()
	assert.Equal(t, len(columns), 2)
	assert.Equal(t, len(columns[0]), 2)
	assert.Equal(t, len(columns[1]), 1)
	assert.Equal(t, columns[0][0].String(), "09:00")
	assert.Equal(t, columns[1][0].String(), "10:00")
}
