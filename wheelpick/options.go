package wheelpick

import "time"

// Options configures a Picker. The zero value is usable: it selects
// the current wall-clock time with no bounds, a 1-minute interval and
// 24-hour display.
type Options struct {
	// InitialTime is the zero-padded "HH:MM" selection shown when the
	// picker opens. Empty selects the current wall-clock time. The
	// parse is lenient, see ParseClockTime.
	InitialTime string

	// Min and Max are the optional selection bounds. Either, both or
	// neither may be set; an inverted range leaves no valid minute.
	Min Bound
	Max Bound

	// MinuteInterval is the minute-wheel granularity. It defaults to 1
	// and need not divide 60 evenly.
	MinuteInterval int

	// Use12Hour opens the picker in 12-hour display mode.
	Use12Hour bool

	// DisabledHours lists canonical hours (0-23) that can never be
	// selected, regardless of bounds or predicate.
	DisabledHours []int

	// DisableTime is an optional custom predicate rejecting individual
	// hour/minute combinations. It must be pure and non-blocking.
	DisableTime TimePredicate

	// Presets is an explicit quick-pick list of "HH:MM" values, used
	// verbatim in order. When empty and both bounds resolve, a ladder
	// is generated across them instead.
	Presets []string

	// PresetStep is the generated-ladder step in minutes. Defaults
	// to 30.
	PresetStep int

	// ShowPresets indicates whether the embedder should render the
	// preset shortcuts.
	ShowPresets bool

	// OnConfirm is invoked by Confirm with the selected time as a
	// zero-padded "HH:MM" string, only while the selection is valid.
	OnConfirm func(time string)

	// OnDismiss is invoked by Dismiss, regardless of validity.
	OnDismiss func()

	// Clock is the wall-clock source. Defaults to RealClock.
	Clock Clock

	// RefreshInterval is the cadence at which relative bounds are
	// re-resolved while the picker is open. Defaults to 10 seconds.
	RefreshInterval time.Duration

	// SettleDeadTime is the window after a programmatic jump during
	// which settle events are treated as jump echoes and suppressed.
	// Defaults to 500 milliseconds.
	SettleDeadTime time.Duration
}

const (
	defaultPresetStep      = 30
	defaultRefreshInterval = 10 * time.Second
	defaultSettleDeadTime  = 500 * time.Millisecond
)

// normalize applies defaults for unset fields.
func (o Options) normalize() Options {
	if o.MinuteInterval == 0 {
		o.MinuteInterval = 1
	}
	if o.PresetStep == 0 {
		o.PresetStep = defaultPresetStep
	}
	if o.Clock == nil {
		o.Clock = RealClock{}
	}
	if o.RefreshInterval == 0 {
		o.RefreshInterval = defaultRefreshInterval
	}
	if o.SettleDeadTime == 0 {
		o.SettleDeadTime = defaultSettleDeadTime
	}
	return o
}
