//go:build !android

package app

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"tapquad/internal/config"
	"tapquad/internal/gesture"
	"tapquad/internal/gles"
	"tapquad/internal/render"
)

// ErrSetupFailed is returned by Run when the quad could not be built.
var ErrSetupFailed = errors.New("render setup failed")

// Run opens a window and shows the quad until the window is closed or a
// scroll ends the program. Frames are drawn only when requested; between
// them the loop blocks on window events or the next gesture timeout.
func Run(cfg config.Config, log *slog.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	px, err := texturePixels(cfg.Texture)
	if err != nil {
		return err
	}

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	ctx, err := gles.NewDesktop()
	if err != nil {
		return err
	}

	snd := openAudio(cfg.Audio, log)
	defer snd.Close()

	dirty := true
	exitCode := 0
	opts := renderOptions(cfg, px, log)
	opts.RequestRender = func() { dirty = true }
	opts.Exit = func(code int) {
		exitCode = code
		window.SetShouldClose(true)
	}
	lc := render.NewLifecycle(opts)
	defer lc.Teardown()

	sinks := newSinks(lc, snd, func() { window.SetShouldClose(true) }, log)
	det := gesture.NewDetector(cfg.GestureConfig(), sinks)
	bindInput(window, det, sinks)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		lc.OnSurfaceResized(w, h)
	})
	window.SetRefreshCallback(func(*glfw.Window) { dirty = true })

	if err := lc.OnSurfaceCreated(ctx); err != nil {
		return fmt.Errorf("%w (exit %d): %w", ErrSetupFailed, exitCode, err)
	}
	lc.OnSurfaceResized(window.GetFramebufferSize())

	for !window.ShouldClose() {
		if dirty {
			dirty = false
			lc.OnDrawFrame()
			window.SwapBuffers()
		}
		if wait, ok := det.Poll(time.Now()); ok {
			glfw.WaitEventsTimeout(wait.Seconds())
		} else {
			glfw.WaitEvents()
		}
		det.Poll(time.Now())
	}
	return nil
}

// bindInput feeds the left mouse button into the detector. Space taps
// and Escape closes the window.
func bindInput(window *glfw.Window, det *gesture.Detector, sink gesture.Sink) {
	window.SetMouseButtonCallback(func(w *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if b != glfw.MouseButtonLeft {
			return
		}
		x, y := w.GetCursorPos()
		switch action {
		case glfw.Press:
			det.Down(x, y, time.Now())
		case glfw.Release:
			det.Up(x, y, time.Now())
		}
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		det.Move(x, y, time.Now())
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeySpace:
			x, y := w.GetCursorPos()
			sink.OnSingleTapConfirmed(x, y)
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		}
	})
}
