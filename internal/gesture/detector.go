package gesture

import (
	"math"
	"time"
)

// Config holds the recogniser thresholds.
type Config struct {
	ShowPressTimeout time.Duration
	DoubleTapTimeout time.Duration
	LongPressTimeout time.Duration
	TouchSlop        float64 // pixels a press may drift before it scrolls
	MinFlingVelocity float64 // pixels per second
}

// DefaultConfig returns thresholds close to a phone's platform defaults.
func DefaultConfig() Config {
	return Config{
		ShowPressTimeout: 100 * time.Millisecond,
		DoubleTapTimeout: 300 * time.Millisecond,
		LongPressTimeout: 500 * time.Millisecond,
		TouchSlop:        8,
		MinFlingVelocity: 50,
	}
}

// Detector recognises gestures from a single pointer. Events must be fed
// in time order from one goroutine; timeouts fire from Poll, so hosts
// call it whenever the delay it last returned has elapsed.
type Detector struct {
	cfg  Config
	sink Sink

	pressed   bool
	scrolling bool
	longPress bool // long press already reported for this press
	secondTap bool // this press completed a double tap

	downX, downY float64
	lastX, lastY float64
	lastT        time.Time
	vx, vy       float64

	showPressAt time.Time // zero when not armed
	longPressAt time.Time

	pendingTap             bool
	tapX, tapY             float64
	tapConfirmAt           time.Time
	firstDownX, firstDownY float64
}

// NewDetector returns a detector reporting to sink; a nil sink drops
// every gesture.
func NewDetector(cfg Config, sink Sink) *Detector {
	if sink == nil {
		sink = NopSink{}
	}
	return &Detector{cfg: cfg, sink: sink}
}

// Down starts a press.
func (d *Detector) Down(x, y float64, t time.Time) {
	d.Poll(t)

	d.secondTap = false
	if d.pendingTap {
		d.pendingTap = false
		if math.Hypot(x-d.firstDownX, y-d.firstDownY) <= d.doubleTapSlop() {
			d.secondTap = true
		} else {
			d.sink.OnSingleTapConfirmed(d.tapX, d.tapY)
		}
	}

	d.pressed = true
	d.scrolling = false
	d.longPress = false
	d.downX, d.downY = x, y
	d.lastX, d.lastY, d.lastT = x, y, t
	d.vx, d.vy = 0, 0
	d.showPressAt = t.Add(d.cfg.ShowPressTimeout)
	d.longPressAt = t.Add(d.cfg.LongPressTimeout)

	d.sink.OnDown(x, y)
	if d.secondTap {
		d.showPressAt, d.longPressAt = time.Time{}, time.Time{}
		d.sink.OnDoubleTap(x, y)
	}
}

// Move tracks the pointer while pressed. Moves without a press are
// ignored.
func (d *Detector) Move(x, y float64, t time.Time) {
	if !d.pressed {
		return
	}
	d.Poll(t)
	if d.longPress {
		d.lastX, d.lastY, d.lastT = x, y, t
		return
	}

	if !d.scrolling {
		if math.Hypot(x-d.downX, y-d.downY) <= d.cfg.TouchSlop {
			return
		}
		d.scrolling = true
		d.secondTap = false
		d.showPressAt, d.longPressAt = time.Time{}, time.Time{}
	}

	dx, dy := d.lastX-x, d.lastY-y
	if dx == 0 && dy == 0 {
		return
	}
	if dt := t.Sub(d.lastT).Seconds(); dt > 0 {
		d.vx, d.vy = (x-d.lastX)/dt, (y-d.lastY)/dt
	}
	d.lastX, d.lastY, d.lastT = x, y, t
	d.sink.OnScroll(dx, dy)
}

// Up ends a press.
func (d *Detector) Up(x, y float64, t time.Time) {
	if !d.pressed {
		return
	}
	d.Move(x, y, t)
	d.pressed = false
	d.showPressAt, d.longPressAt = time.Time{}, time.Time{}

	switch {
	case d.longPress:
	case d.scrolling:
		if math.Hypot(d.vx, d.vy) >= d.cfg.MinFlingVelocity {
			d.sink.OnFling(d.vx, d.vy)
		}
	case d.secondTap:
	default:
		d.sink.OnSingleTapUp(x, y)
		d.pendingTap = true
		d.tapX, d.tapY = x, y
		d.firstDownX, d.firstDownY = d.downX, d.downY
		d.tapConfirmAt = t.Add(d.cfg.DoubleTapTimeout)
	}
	d.scrolling = false
	d.secondTap = false
}

// Poll fires every timeout due at t and reports how long until the next
// one. ok is false when nothing is pending.
func (d *Detector) Poll(t time.Time) (wait time.Duration, ok bool) {
	if !d.showPressAt.IsZero() && !t.Before(d.showPressAt) {
		d.showPressAt = time.Time{}
		d.sink.OnShowPress(d.downX, d.downY)
	}
	if !d.longPressAt.IsZero() && !t.Before(d.longPressAt) {
		d.longPressAt = time.Time{}
		d.longPress = true
		d.sink.OnLongPress(d.lastX, d.lastY)
	}
	if d.pendingTap && !t.Before(d.tapConfirmAt) {
		d.pendingTap = false
		d.sink.OnSingleTapConfirmed(d.tapX, d.tapY)
	}

	var next time.Time
	for _, at := range []time.Time{d.showPressAt, d.longPressAt} {
		if !at.IsZero() && (next.IsZero() || at.Before(next)) {
			next = at
		}
	}
	if d.pendingTap && (next.IsZero() || d.tapConfirmAt.Before(next)) {
		next = d.tapConfirmAt
	}
	if next.IsZero() {
		return 0, false
	}
	return next.Sub(t), true
}

// A second tap may land further from the first than a press may drift.
func (d *Detector) doubleTapSlop() float64 { return d.cfg.TouchSlop * 8 }
