//go:build android

package app

import (
	"log/slog"
	"os"
	"time"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"tapquad/internal/config"
	"tapquad/internal/gesture"
	"tapquad/internal/gles"
	"tapquad/internal/render"
)

// gestureTimeout is posted back onto the event loop when a gesture
// deadline passes.
type gestureTimeout struct{}

// Run drives the quad from the x/mobile event loop. It returns only if
// the loop ends.
func Run(cfg config.Config, log *slog.Logger) error {
	px, err := texturePixels(cfg.Texture)
	if err != nil {
		return err
	}
	snd := openAudio(cfg.Audio, log)

	app.Main(func(a app.App) {
		opts := renderOptions(cfg, px, log)
		opts.RequestRender = func() { a.Send(paint.Event{}) }
		lc := render.NewLifecycle(opts)

		sinks := newSinks(lc, snd, func() {
			snd.Close()
			os.Exit(0)
		}, log)
		det := gesture.NewDetector(cfg.GestureConfig(), sinks)

		var (
			visible  bool
			sz       size.Event
			active   touch.Sequence
			touching bool
			timer    *time.Timer
		)
		schedule := func() {
			if timer != nil {
				timer.Stop()
			}
			if wait, ok := det.Poll(time.Now()); ok {
				timer = time.AfterFunc(wait, func() { a.Send(gestureTimeout{}) })
			}
		}

		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						continue
					}
					if err := lc.OnSurfaceCreated(gles.NewMobile(glctx)); err != nil {
						continue
					}
					visible = true
					if sz.WidthPx > 0 {
						lc.OnSurfaceResized(sz.WidthPx, sz.HeightPx)
					}
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					visible = false
					lc.Teardown()
				}
				if e.To == lifecycle.StageDead {
					snd.Close()
					return
				}

			case size.Event:
				sz = e
				lc.OnSurfaceResized(e.WidthPx, e.HeightPx)

			case touch.Event:
				x, y := float64(e.X), float64(e.Y)
				switch e.Type {
				case touch.TypeBegin:
					if touching {
						continue
					}
					touching, active = true, e.Sequence
					det.Down(x, y, time.Now())
				case touch.TypeMove:
					if touching && e.Sequence == active {
						det.Move(x, y, time.Now())
					}
				case touch.TypeEnd:
					if touching && e.Sequence == active {
						touching = false
						det.Up(x, y, time.Now())
					}
				}
				schedule()

			case gestureTimeout:
				schedule()

			case paint.Event:
				if !visible || e.External {
					continue
				}
				lc.OnDrawFrame()
				a.Publish()
			}
		}
	})
	return nil
}
