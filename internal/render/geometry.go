package render

import "tapquad/internal/gles"

// Quad corners in triangle-fan order: left-top, left-bottom,
// right-bottom, right-top.
var quadPositions = []float32{
	-1.0, 1.0, 0.0,
	-1.0, -1.0, 0.0,
	1.0, -1.0, 0.0,
	1.0, 1.0, 0.0,
}

const (
	quadVertices   = 4
	texCoordFloats = quadVertices * 2
)

// GeometryBuffers holds the quad's vertex array and its two buffers.
// Positions never change; texture coordinates are replaced wholesale
// by UpdateTexCoords.
type GeometryBuffers struct {
	VAO       uint32
	Positions uint32
	TexCoords uint32
}

// NewGeometry uploads the static positions and reserves, without
// filling, a dynamic buffer for 4×2 texture coordinates. Both are wired
// into the same vertex array at AttribPosition and AttribTexCoord.
func NewGeometry(ctx gles.Context) (*GeometryBuffers, error) {
	g := &GeometryBuffers{}

	g.VAO = ctx.CreateVertexArray()
	if g.VAO == 0 {
		return nil, &ResourceError{What: "vertex array", Code: ctx.GetError()}
	}
	g.Positions = ctx.CreateBuffer()
	g.TexCoords = ctx.CreateBuffer()
	if g.Positions == 0 || g.TexCoords == 0 {
		code := ctx.GetError()
		g.Release(ctx)
		return nil, &ResourceError{What: "vertex buffer", Code: code}
	}

	ctx.BindVertexArray(g.VAO)

	ctx.BindBuffer(gles.ARRAY_BUFFER, g.Positions)
	ctx.BufferData(gles.ARRAY_BUFFER, quadPositions, gles.STATIC_DRAW)
	ctx.VertexAttribPointer(AttribPosition, 3, gles.FLOAT, false, 0, 0)
	ctx.EnableVertexAttribArray(AttribPosition)

	ctx.BindBuffer(gles.ARRAY_BUFFER, g.TexCoords)
	ctx.BufferInit(gles.ARRAY_BUFFER, texCoordFloats*4, gles.DYNAMIC_DRAW)
	ctx.VertexAttribPointer(AttribTexCoord, 2, gles.FLOAT, false, 0, 0)
	ctx.EnableVertexAttribArray(AttribTexCoord)

	ctx.BindBuffer(gles.ARRAY_BUFFER, 0)
	ctx.BindVertexArray(0)

	if code := ctx.GetError(); code != gles.NO_ERROR {
		g.Release(ctx)
		return nil, &ResourceError{What: "quad geometry", Code: code}
	}
	return g, nil
}

// UpdateTexCoords replaces all eight texture coordinates. The attribute
// pointer recorded in the vertex array keeps referring to the same
// buffer, so no vertex array needs to be bound.
func (g *GeometryBuffers) UpdateTexCoords(ctx gles.Context, v Variant) {
	ctx.BindBuffer(gles.ARRAY_BUFFER, g.TexCoords)
	ctx.BufferData(gles.ARRAY_BUFFER, v[:], gles.DYNAMIC_DRAW)
	ctx.BindBuffer(gles.ARRAY_BUFFER, 0)
}

// Draw issues the 4-vertex triangle fan.
func (g *GeometryBuffers) Draw(ctx gles.Context) {
	ctx.BindVertexArray(g.VAO)
	ctx.DrawArrays(gles.TRIANGLE_FAN, 0, quadVertices)
	ctx.BindVertexArray(0)
}

// Release deletes the vertex array and both buffers, skipping zero
// handles.
func (g *GeometryBuffers) Release(ctx gles.Context) {
	if g == nil {
		return
	}
	if g.VAO != 0 {
		ctx.DeleteVertexArray(g.VAO)
		g.VAO = 0
	}
	if g.Positions != 0 {
		ctx.DeleteBuffer(g.Positions)
		g.Positions = 0
	}
	if g.TexCoords != 0 {
		ctx.DeleteBuffer(g.TexCoords)
		g.TexCoords = 0
	}
}
