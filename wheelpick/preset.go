package wheelpick

// presetRowsPerColumn is the fixed number of preset rows per layout
// column.
const presetRowsPerColumn = 2

// generatePresets derives the quick-pick list. An explicit list wins
// verbatim, order preserved and unfiltered. Otherwise a ladder is
// generated from min to max stepped by step minutes, inclusive of max
// when a step lands on it exactly, never past it. If either bound is
// absent the generated list is empty.
func generatePresets(explicit []string, min, max *ClockTime, step int) []ClockTime {
	if len(explicit) > 0 {
		presets := make([]ClockTime, len(explicit))
		for i, value := range explicit {
			presets[i] = ParseClockTime(value)
		}
		return presets
	}
	if min == nil || max == nil {
		return nil
	}
	var presets []ClockTime
	maxTotal := max.TotalMinutes()
	for total := min.TotalMinutes(); total <= maxTotal; total += step {
		presets = append(presets, clockTimeOfTotal(total))
	}
	return presets
}

// filterPresets drops presets failing the constraint checks,
// preserving order.
func filterPresets(presets []ClockTime, constraints Constraints) []ClockTime {
	valid := make([]ClockTime, 0, len(presets))
	for _, preset := range presets {
		if constraints.Check(preset) {
			valid = append(valid, preset)
		}
	}
	return valid
}

// presetColumns partitions presets into fixed-size layout columns.
// Columns carry no state; the partition exists purely for rendering.
func presetColumns(presets []ClockTime) [][]ClockTime {
	var columns [][]ClockTime
	for i := 0; i < len(presets); i += presetRowsPerColumn {
		end := i + presetRowsPerColumn
		if end > len(presets) {
			end = len(presets)
		}
		columns = append(columns, presets[i:end])
	}
	return columns
}
