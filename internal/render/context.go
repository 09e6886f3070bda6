package render

import (
	"fmt"
	"log/slog"

	"tapquad/internal/gles"
)

// RenderContext owns every GPU handle of the quad together with the
// tap/projection state. It is driven from the rendering thread only.
type RenderContext struct {
	gl       gles.Context
	program  *ShaderProgram
	geometry *GeometryBuffers
	texture  *Texture
	state    State

	// uploaded is the tap state whose coordinates sit in the texcoord
	// buffer, 0 when the buffer has not been filled.
	uploaded int

	log *slog.Logger
}

func newRenderContext(log *slog.Logger) *RenderContext {
	return &RenderContext{state: NewState(), log: log}
}

// build acquires program, geometry and texture in that order. Whatever
// was acquired before a failure stays recorded so Release can free it.
func (rc *RenderContext) build(ctx gles.Context, px Pixels, wrap WrapMode) error {
	rc.gl = ctx
	rc.uploaded = 0

	program, err := BuildProgram(ctx, QuadVertexSrc, QuadFragmentSrc)
	if err != nil {
		return fmt.Errorf("shader program: %w", err)
	}
	rc.program = program

	geometry, err := NewGeometry(ctx)
	if err != nil {
		return fmt.Errorf("quad geometry: %w", err)
	}
	rc.geometry = geometry

	texture, err := LoadTexture(ctx, px, wrap)
	if err != nil {
		return fmt.Errorf("texture: %w", err)
	}
	rc.texture = texture
	return nil
}

func (rc *RenderContext) ready() bool {
	return rc.gl != nil && rc.program != nil && rc.program.Program != 0 &&
		rc.geometry != nil && rc.geometry.VAO != 0 &&
		rc.texture != nil && rc.texture.ID != 0
}

// Draw renders one frame of the quad.
func (rc *RenderContext) Draw() {
	if !rc.ready() {
		return
	}
	ctx := rc.gl
	ctx.Clear(gles.COLOR_BUFFER_BIT | gles.DEPTH_BUFFER_BIT)

	mvp := rc.state.MVP()
	ctx.UseProgram(rc.program.Program)
	ctx.UniformMatrix4fv(rc.program.MVP, mvp[:])
	ctx.Uniform1i(rc.program.TapFlag, rc.state.TapFlag())

	ctx.ActiveTexture(gles.TEXTURE0)
	ctx.BindTexture(gles.TEXTURE_2D, rc.texture.ID)
	ctx.Uniform1i(rc.program.Sampler, 0)

	// Coordinates only change with the tap state, so upload on change.
	tap := rc.state.TapCount()
	if v, ok := VariantFor(tap); ok && rc.uploaded != tap {
		rc.geometry.UpdateTexCoords(ctx, v)
		rc.uploaded = tap
		rc.log.Debug("texture coordinates uploaded", "tap", tap)
	}

	rc.geometry.Draw(ctx)
	ctx.UseProgram(0)
}

// Release frees handles in reverse acquisition order: vertex array and
// buffers, texture, shader stages, program.
func (rc *RenderContext) Release() {
	if rc.gl == nil {
		return
	}
	rc.geometry.Release(rc.gl)
	rc.texture.Release(rc.gl)
	rc.program.Release(rc.gl)
	rc.geometry, rc.texture, rc.program = nil, nil, nil
	rc.uploaded = 0
	rc.gl = nil
}
