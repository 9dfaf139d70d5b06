package wheelpick

// Wheel is a scrollable row-list capability provided by the embedder,
// one per column. The engine commands jumps through it; user-driven
// scrolling is reported back via Picker.ScrollSettled.
type Wheel interface {
	// JumpTo scrolls the wheel to the given row index, optionally
	// animated. The capability's own settle notification may fire
	// later; the engine suppresses it.
	JumpTo(row int, animated bool)

	// RowHeight returns the fixed pixel height of a row, used to
	// convert settle offsets back to row indices.
	RowHeight() float64
}

// Axis identifies which wheel a settle event originated from.
type Axis int

const (
	AxisHour Axis = iota
	AxisMinute
)

// RowStatus is the per-row feasibility used to dim individual wheel
// rows.
type RowStatus int

const (
	RowValid RowStatus = iota
	RowInvalid
)

// String returns the row status label.
func (s RowStatus) String() string {
	if s == RowInvalid {
		return "invalid"
	}
	return "valid"
}
