package wheelpick

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/wheelpick/go-wheelpick/wheelpick/logger"
)

// Picker is the time-selection state machine. It owns the canonical
// selected hour/minute, the display mode and the resolved bounds, and
// drives the two wheel capabilities.
//
// The engine reacts to discrete events (open/close, taps, settle
// notifications); the only background activity is the bounds-refresh
// ticker, which runs on its own goroutine, so all state is guarded by
// a mutex.
type Picker struct {
	mtx         sync.Mutex
	opts        Options
	hourWheel   Wheel
	minuteWheel Wheel

	open     bool
	selected ClockTime
	mode     DisplayMode
	min, max *ClockTime

	// suppress marks settle events as echoes of a programmatic jump;
	// disarm is the single pending task clearing it. The generation
	// counter keeps a superseded disarm task from truncating the
	// window armed by a later jump.
	suppress    bool
	suppressGen uint64
	disarm      *time.Timer

	cancelRefresh context.CancelFunc
}

// New returns a new Picker driving the given wheel capabilities.
func New(hourWheel, minuteWheel Wheel, opts Options) (*Picker, error) {
	if hourWheel == nil || minuteWheel == nil {
		return nil, illegalArgumentError("nil wheel capability")
	}
	if opts.MinuteInterval < 0 {
		return nil, illegalArgumentError("negative minute interval")
	}
	if opts.PresetStep < 0 {
		return nil, illegalArgumentError("negative preset step")
	}
	return &Picker{
		opts:        opts.normalize(),
		hourWheel:   hourWheel,
		minuteWheel: minuteWheel,
	}, nil
}

// Open transitions the picker to the open state: it resolves the
// bounds, derives the initial selection from Options.InitialTime
// (corrected forward against the minimum bound), jumps both wheels to
// the matching rows without animation, and starts the bounds-refresh
// ticker when a bound is relative.
//
// The selection is re-derived on every Open; nothing survives a
// close/reopen cycle. Callers wanting continuity pass the last
// confirmed value back as the next initial time.
func (p *Picker) Open() {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.open {
		logger.Debug("picker is already open")
		return
	}
	p.open = true
	p.mode = Mode24
	if p.opts.Use12Hour {
		p.mode = Mode12
	}
	p.resolveBoundsLocked()

	t := ClockTimeAt(p.opts.Clock.Now())
	if p.opts.InitialTime != "" {
		t = ParseClockTime(p.opts.InitialTime)
	}
	t.Minute = GridMinute(t.Minute, p.opts.MinuteInterval)
	t = correctAgainstMin(t, p.min, p.opts.MinuteInterval)
	p.jumpToTimeLocked(t, false)

	if p.relativeBounds() {
		var ctx context.Context
		ctx, p.cancelRefresh = context.WithCancel(context.Background())
		go p.refreshLoop(ctx)
	}
	logger.Debugf("picker opened at %s (%s mode)", p.selected, p.mode)
}

// Close transitions the picker to the closed state, synchronously
// stopping the refresh ticker and any pending suppression disarm task.
// It is safe to call when no ticker is running.
func (p *Picker) Close() {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if !p.open {
		return
	}
	p.open = false
	if p.cancelRefresh != nil {
		p.cancelRefresh()
		p.cancelRefresh = nil
	}
	if p.disarm != nil {
		p.disarm.Stop()
		p.disarm = nil
	}
	p.suppress = false
	logger.Debug("picker closed")
}

// IsOpen reports whether the picker is open.
func (p *Picker) IsOpen() bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.open
}

// Selected returns the canonical selected time.
func (p *Picker) Selected() ClockTime {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.selected
}

// Mode returns the current display mode.
func (p *Picker) Mode() DisplayMode {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.mode
}

// Bounds returns copies of the currently resolved bounds; either may
// be nil.
func (p *Picker) Bounds() (min, max *ClockTime) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return copyTime(p.min), copyTime(p.max)
}

// FormatSelected returns the selection formatted for display under the
// current mode.
func (p *Picker) FormatSelected() string {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.selected.Format(p.mode)
}

// SetMode switches the display mode. The canonical selected time is
// unchanged; the wheels are re-synced without animation to the rows
// matching it under the new mode.
func (p *Picker) SetMode(mode DisplayMode) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.setModeLocked(mode)
}

// ToggleMode flips between 12-hour and 24-hour display.
func (p *Picker) ToggleMode() {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.mode == Mode12 {
		p.setModeLocked(Mode24)
	} else {
		p.setModeLocked(Mode12)
	}
}

func (p *Picker) setModeLocked(mode DisplayMode) {
	if p.mode == mode {
		return
	}
	p.mode = mode
	p.jumpToTimeLocked(p.selected, false)
}

// TapHourRow selects an hour row directly. value is the row's display
// value (1-12 or 0-23 depending on mode); in Mode12 it is translated
// to the canonical hour using the current AM/PM half. The wheel is
// commanded to jump, animated; the canonical selection updates
// immediately, independent of animation completion.
func (p *Picker) TapHourRow(row, value int) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.selected.Hour = HourForRow(value, p.selected.Hour, p.mode)
	p.hourWheel.JumpTo(clampIndex(row, len(HourRows(p.mode))), true)
}

// TapMinuteRow selects a minute row directly.
func (p *Picker) TapMinuteRow(row, value int) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.selected.Minute = value
	p.minuteWheel.JumpTo(clampIndex(row, len(MinuteRows(p.opts.MinuteInterval))), true)
}

// ScrollSettled handles the wheel capability's notification that
// user-driven scrolling stopped at the given pixel offset. The offset
// is converted to the nearest row index and applied through the same
// translation as direct taps. Settle events arriving inside the
// dead-time window after a programmatic jump are echoes of that jump
// and are dropped.
func (p *Picker) ScrollSettled(axis Axis, offset float64) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.suppress {
		logger.Trace("settle event suppressed during programmatic jump")
		return
	}
	switch axis {
	case AxisHour:
		index := settleIndex(offset, p.hourWheel.RowHeight())
		rows := HourRows(p.mode)
		if index >= 0 && index < len(rows) {
			p.selected.Hour = HourForRow(rows[index], p.selected.Hour, p.mode)
		}
	case AxisMinute:
		index := settleIndex(offset, p.minuteWheel.RowHeight())
		rows := MinuteRows(p.opts.MinuteInterval)
		if index >= 0 && index < len(rows) {
			p.selected.Minute = rows[index]
		}
	}
}

// TapPreset selects the given time, jumping both wheels animated.
// Equivalent to an hour tap and a minute tap performed atomically.
func (p *Picker) TapPreset(t ClockTime) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.jumpToTimeLocked(t, true)
}

// ToggleAmPm flips the selected hour by exactly 12, modulo 24. The
// minute and the hour-wheel row index are unchanged; only the
// canonical half switches.
func (p *Picker) ToggleAmPm() {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.selected.Hour >= 12 {
		p.selected.Hour -= 12
	} else {
		p.selected.Hour += 12
	}
}

// IsValid reports whether the current selection passes all four
// constraint checks. Invalid selection is a first-class state, not an
// error: the embedder disables confirmation while it holds.
func (p *Picker) IsValid() bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.constraintsLocked().Check(p.selected)
}

// HourStatus returns the feasibility of an hour row given its display
// value, translated to canonical exactly as taps are.
func (p *Picker) HourStatus(value int) RowStatus {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	hour := HourForRow(value, p.selected.Hour, p.mode)
	if p.constraintsLocked().HourFeasible(hour) {
		return RowValid
	}
	return RowInvalid
}

// MinuteStatus returns the feasibility of a minute row against the
// currently selected hour, using the full four-check validity test.
func (p *Picker) MinuteStatus(value int) RowStatus {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.constraintsLocked().Check(ClockTime{Hour: p.selected.Hour, Minute: value}) {
		return RowValid
	}
	return RowInvalid
}

// Presets returns the quick-pick list: the explicit list verbatim, or
// a ladder generated across the resolved bounds.
func (p *Picker) Presets() []ClockTime {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return generatePresets(p.opts.Presets, p.min, p.max, p.opts.PresetStep)
}

// ValidPresets returns the presets passing the constraint checks,
// order preserved.
func (p *Picker) ValidPresets() []ClockTime {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	presets := generatePresets(p.opts.Presets, p.min, p.max, p.opts.PresetStep)
	return filterPresets(presets, p.constraintsLocked())
}

// PresetColumns partitions the valid presets into two-row layout
// columns.
func (p *Picker) PresetColumns() [][]ClockTime {
	return presetColumns(p.ValidPresets())
}

// ShowsPresets reports whether the embedder should render the preset
// shortcuts.
func (p *Picker) ShowsPresets() bool {
	return p.opts.ShowPresets
}

// Confirm reads the canonical selection and invokes the confirm
// callback with its zero-padded "HH:MM" form. It is a no-op error
// while the selection is invalid or the picker is closed.
func (p *Picker) Confirm() (string, error) {
	p.mtx.Lock()
	if !p.open {
		p.mtx.Unlock()
		return "", ErrNotOpen
	}
	if !p.constraintsLocked().Check(p.selected) {
		selected := p.selected
		p.mtx.Unlock()
		return "", invalidSelectionError(selected.String())
	}
	value := p.selected.String()
	confirm := p.opts.OnConfirm
	p.mtx.Unlock()

	if confirm != nil {
		confirm(value)
	}
	return value, nil
}

// Dismiss closes the picker and invokes the dismiss callback. It is
// allowed at any time, regardless of validity.
func (p *Picker) Dismiss() {
	p.Close()
	if p.opts.OnDismiss != nil {
		p.opts.OnDismiss()
	}
}

// jumpToTimeLocked moves the selection to t (minute snapped onto the
// interval grid), commands both wheels to the matching rows and arms
// settle suppression for the dead-time window. Row indices are clamped
// defensively.
func (p *Picker) jumpToTimeLocked(t ClockTime, animated bool) {
	t.Minute = GridMinute(t.Minute, p.opts.MinuteInterval)
	p.selected = t

	p.suppress = true
	p.suppressGen++
	gen := p.suppressGen
	if p.disarm != nil {
		p.disarm.Stop()
	}
	p.disarm = time.AfterFunc(p.opts.SettleDeadTime, func() {
		p.disarmSuppression(gen)
	})

	p.hourWheel.JumpTo(HourRowIndex(t.Hour, p.mode), animated)
	p.minuteWheel.JumpTo(MinuteRowIndex(t.Minute, p.opts.MinuteInterval), animated)
}

// disarmSuppression clears the suppression flag after the dead-time
// window. It is deliberately not cleared synchronously with the jump:
// some wheel capabilities emit spurious intermediate settle events
// while a jump is in flight. A task whose jump has been superseded is
// a no-op.
func (p *Picker) disarmSuppression(gen uint64) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if gen == p.suppressGen {
		p.suppress = false
	}
}

// resolveBoundsLocked re-resolves both bound specs against the wall
// clock. It never touches the current selection.
func (p *Picker) resolveBoundsLocked() {
	now := p.opts.Clock.Now()
	p.min = resolveBound(p.opts.Min, now, p.opts.MinuteInterval)
	p.max = resolveBound(p.opts.Max, now, p.opts.MinuteInterval)
}

// relativeBounds reports whether either bound spec is wall-clock
// relative.
func (p *Picker) relativeBounds() bool {
	return (p.opts.Min != nil && p.opts.Min.IsRelative()) ||
		(p.opts.Max != nil && p.opts.Max.IsRelative())
}

// refreshLoop keeps relative bounds fresh while the picker is open.
// The context is cancelled by Close, so no tick can fire against a
// torn-down picker.
func (p *Picker) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(p.opts.RefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.mtx.Lock()
			if p.open {
				p.resolveBoundsLocked()
				logger.Tracef("bounds refreshed: min=%v max=%v", p.min, p.max)
			}
			p.mtx.Unlock()
		}
	}
}

// constraintsLocked assembles the current constraint set.
func (p *Picker) constraintsLocked() Constraints {
	return Constraints{
		Min:            p.min,
		Max:            p.max,
		DisabledHours:  disabledHourSet(p.opts.DisabledHours),
		DisableTime:    p.opts.DisableTime,
		MinuteInterval: p.opts.MinuteInterval,
	}
}

// correctAgainstMin snaps an initial selection strictly before min to
// the smallest grid minute at or after it, carrying into the hour on
// overflow. There is no symmetric correction against max; callers
// should not pass an initial time above it.
func correctAgainstMin(t ClockTime, min *ClockTime, interval int) ClockTime {
	if min == nil || t.TotalMinutes() >= min.TotalMinutes() {
		return t
	}
	minute := (min.Minute + interval - 1) / interval * interval
	corrected := ClockTime{Hour: min.Hour, Minute: minute}
	if minute >= 60 {
		corrected = ClockTime{Hour: (min.Hour + 1) % 24, Minute: 0}
	}
	return corrected
}

// settleIndex converts a settle pixel offset to the nearest row index.
func settleIndex(offset, rowHeight float64) int {
	if rowHeight <= 0 {
		return 0
	}
	return int(math.Round(offset / rowHeight))
}

func copyTime(t *ClockTime) *ClockTime {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}
