// Package gesture turns raw pointer events into taps, double taps, long
// presses, scrolls and flings.
package gesture

// Sink receives recognised gestures. Coordinates are in window pixels.
type Sink interface {
	OnDown(x, y float64)
	// OnShowPress reports a press held still past the show-press
	// timeout, before it is known to be a tap or a long press.
	OnShowPress(x, y float64)
	OnSingleTapUp(x, y float64)
	OnSingleTapConfirmed(x, y float64)
	OnDoubleTap(x, y float64)
	OnLongPress(x, y float64)
	// OnScroll reports the distance moved since the previous scroll
	// event, previous minus current position.
	OnScroll(dx, dy float64)
	// OnFling reports the release velocity in pixels per second.
	OnFling(vx, vy float64)
}

// NopSink ignores every gesture. Embed it to handle only a few.
type NopSink struct{}

func (NopSink) OnDown(x, y float64)               {}
func (NopSink) OnShowPress(x, y float64)          {}
func (NopSink) OnSingleTapUp(x, y float64)        {}
func (NopSink) OnSingleTapConfirmed(x, y float64) {}
func (NopSink) OnDoubleTap(x, y float64)          {}
func (NopSink) OnLongPress(x, y float64)          {}
func (NopSink) OnScroll(dx, dy float64)           {}
func (NopSink) OnFling(vx, vy float64)            {}

// Sinks delivers each gesture to every member in order.
type Sinks []Sink

func (s Sinks) OnDown(x, y float64) {
	for _, k := range s {
		k.OnDown(x, y)
	}
}

func (s Sinks) OnShowPress(x, y float64) {
	for _, k := range s {
		k.OnShowPress(x, y)
	}
}

func (s Sinks) OnSingleTapUp(x, y float64) {
	for _, k := range s {
		k.OnSingleTapUp(x, y)
	}
}

func (s Sinks) OnSingleTapConfirmed(x, y float64) {
	for _, k := range s {
		k.OnSingleTapConfirmed(x, y)
	}
}

func (s Sinks) OnDoubleTap(x, y float64) {
	for _, k := range s {
		k.OnDoubleTap(x, y)
	}
}

func (s Sinks) OnLongPress(x, y float64) {
	for _, k := range s {
		k.OnLongPress(x, y)
	}
}

func (s Sinks) OnScroll(dx, dy float64) {
	for _, k := range s {
		k.OnScroll(dx, dy)
	}
}

func (s Sinks) OnFling(vx, vy float64) {
	for _, k := range s {
		k.OnFling(vx, vy)
	}
}

var (
	_ Sink = NopSink{}
	_ Sink = Sinks(nil)
)
