package app

import (
	"log/slog"

	"tapquad/internal/gesture"
	"tapquad/internal/render"
)

// driver turns gestures into quad actions: a confirmed single tap
// advances the tap state, a scroll tears the quad down and quits. Other
// gestures are ignored.
type driver struct {
	gesture.NopSink

	lc   *render.Lifecycle
	quit func()
	log  *slog.Logger

	quitting bool
}

func newDriver(lc *render.Lifecycle, quit func(), log *slog.Logger) *driver {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &driver{lc: lc, quit: quit, log: log}
}

func (d *driver) OnSingleTapConfirmed(x, y float64) {
	if d.quitting {
		return
	}
	d.lc.Tap()
}

func (d *driver) OnScroll(dx, dy float64) {
	if d.quitting {
		return
	}
	d.quitting = true
	d.log.Info("scroll, shutting down")
	d.lc.Teardown()
	d.quit()
}

// clicker plays the tap click for a tap state. *audio.System is one,
// including a nil one.
type clicker interface {
	PlayTap(step int)
}

// tapSound clicks once per confirmed tap. It runs after the driver in
// the fan-out, so it reads the state the tap just advanced to.
type tapSound struct {
	gesture.NopSink

	drv *driver
	snd clicker
}

func (s *tapSound) OnSingleTapConfirmed(x, y float64) {
	if s.drv.quitting {
		return
	}
	s.snd.PlayTap(s.drv.lc.TapCount())
}

// newSinks builds the gesture fan-out shared by every host.
func newSinks(lc *render.Lifecycle, snd clicker, quit func(), log *slog.Logger) gesture.Sinks {
	drv := newDriver(lc, quit, log)
	return gesture.Sinks{drv, &tapSound{drv: drv, snd: snd}}
}

var (
	_ gesture.Sink = (*driver)(nil)
	_ gesture.Sink = (*tapSound)(nil)
)
