// Package render draws a single textured quad whose texture mapping
// cycles with taps.
//
// A host creates a Lifecycle, forwards surface callbacks to it (the
// Renderer contract) and calls Tap from its gesture handling. All calls
// must come from the thread that owns the GL context.
package render

import (
	"errors"
	"log/slog"
	"os"

	"tapquad/internal/gles"
)

// Renderer is the contract a surface host drives.
type Renderer interface {
	OnSurfaceCreated(ctx gles.Context) error
	OnSurfaceResized(width, height int)
	OnDrawFrame()
}

// Options configures a Lifecycle.
type Options struct {
	Texture    Pixels
	Wrap       WrapMode
	ClearColor [4]float32

	// Logger receives diagnostics; nil discards them.
	Logger *slog.Logger
	// RequestRender asks the host for one more frame.
	RequestRender func()
	// Exit terminates the process after a fatal setup error. Defaults
	// to os.Exit.
	Exit func(code int)
}

// Handles is a snapshot of every GPU object name held by the quad.
type Handles struct {
	VAO, Positions, TexCoords uint32
	Texture                   uint32
	Vertex, Fragment, Program uint32
}

// Lifecycle binds surface events, taps and teardown to a RenderContext.
type Lifecycle struct {
	opts   Options
	rc     *RenderContext
	log    *slog.Logger
	exited bool
}

var _ Renderer = (*Lifecycle)(nil)

// NewLifecycle fills unset hooks with defaults. No GL call happens until
// OnSurfaceCreated.
func NewLifecycle(opts Options) *Lifecycle {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.RequestRender == nil {
		opts.RequestRender = func() {}
	}
	if opts.Exit == nil {
		opts.Exit = os.Exit
	}
	return &Lifecycle{
		opts: opts,
		rc:   newRenderContext(opts.Logger),
		log:  opts.Logger,
	}
}

// OnSurfaceCreated builds every GPU resource on ctx. A failure is fatal:
// the error is logged, whatever was built is torn down, Exit(1) runs and
// the error is returned for hosts whose Exit does not terminate.
func (l *Lifecycle) OnSurfaceCreated(ctx gles.Context) error {
	l.log.Info("surface created",
		"gl_version", ctx.GetString(gles.VERSION),
		"glsl_version", ctx.GetString(gles.SHADING_LANGUAGE_VERSION))

	if l.rc.gl != nil {
		l.rc.Release()
	}
	if err := l.rc.build(ctx, l.opts.Texture, l.opts.Wrap); err != nil {
		l.fatal(err)
		return err
	}

	ctx.Enable(gles.DEPTH_TEST)
	ctx.DepthFunc(gles.LEQUAL)
	c := l.opts.ClearColor
	ctx.ClearColor(c[0], c[1], c[2], c[3])
	l.rc.state.ResetProjection()
	return nil
}

func (l *Lifecycle) fatal(err error) {
	attrs := []any{"err", err}
	var ce *CompileError
	var le *LinkError
	switch {
	case errors.As(err, &ce):
		attrs = append(attrs, "stage", ce.Stage, "info_log", ce.Log)
	case errors.As(err, &le):
		attrs = append(attrs, "info_log", le.Log)
	}
	l.log.Error("render setup failed", attrs...)
	l.Teardown()
	if !l.exited {
		l.exited = true
		l.opts.Exit(1)
	}
}

// OnSurfaceResized sets the viewport and rebuilds the projection.
func (l *Lifecycle) OnSurfaceResized(width, height int) {
	if ctx := l.rc.gl; ctx != nil {
		ctx.Viewport(0, 0, width, height)
	}
	l.rc.state.Resize(width, height)
	l.log.Debug("surface resized", "width", width, "height", height)
	l.opts.RequestRender()
}

// OnDrawFrame renders one frame. It does not request another one.
func (l *Lifecycle) OnDrawFrame() { l.rc.Draw() }

// Tap advances the tap state, asks for a redraw and returns the new
// state.
func (l *Lifecycle) Tap() int {
	n := l.rc.state.Tap()
	l.log.Debug("tap", "state", n)
	l.opts.RequestRender()
	return n
}

// TapCount reports the current tap state.
func (l *Lifecycle) TapCount() int { return l.rc.state.TapCount() }

// State exposes the tap and projection state for inspection.
func (l *Lifecycle) State() State { return l.rc.state }

// Handles reports the GPU object names currently held.
func (l *Lifecycle) Handles() Handles {
	var h Handles
	if g := l.rc.geometry; g != nil {
		h.VAO, h.Positions, h.TexCoords = g.VAO, g.Positions, g.TexCoords
	}
	if t := l.rc.texture; t != nil {
		h.Texture = t.ID
	}
	if p := l.rc.program; p != nil {
		h.Vertex, h.Fragment, h.Program = p.Vertex, p.Fragment, p.Program
	}
	return h
}

// Teardown releases every GPU resource. Safe to call repeatedly, before
// OnSurfaceCreated, and from a half-finished setup.
func (l *Lifecycle) Teardown() {
	if l.rc.gl == nil {
		return
	}
	l.rc.Release()
	l.log.Debug("render resources released")
}
