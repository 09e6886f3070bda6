package render

import (
	"errors"
	"testing"

	"tapquad/internal/gles"
	"tapquad/internal/gles/glestest"
)

func TestNewGeometry(t *testing.T) {
	f := glestest.New()
	g, err := NewGeometry(f)
	if err != nil {
		t.Fatalf("NewGeometry: %v", err)
	}

	pos := f.Buffers[g.Positions]
	if pos.Usage != gles.STATIC_DRAW || len(pos.Data) != 12 {
		t.Errorf("positions: usage %#x, %d floats", pos.Usage, len(pos.Data))
	}
	tc := f.Buffers[g.TexCoords]
	if tc.Usage != gles.DYNAMIC_DRAW || tc.Size != 8*4 {
		t.Errorf("texcoords: usage %#x, %d bytes", tc.Usage, tc.Size)
	}
	if tc.Data != nil {
		t.Error("texcoord buffer should stay unfilled until the first tap")
	}

	vao := f.VertexArrays[g.VAO]
	if vao.Attribs[AttribPosition] != g.Positions || vao.Attribs[AttribTexCoord] != g.TexCoords {
		t.Errorf("vao attribs = %v", vao.Attribs)
	}
	if !vao.Enabled[AttribPosition] || !vao.Enabled[AttribTexCoord] {
		t.Errorf("vao enabled = %v", vao.Enabled)
	}
	if f.BoundVAO != 0 || f.BoundBuffer != 0 {
		t.Error("setup left objects bound")
	}
}

func TestGeometryUpdateAndDraw(t *testing.T) {
	f := glestest.New()
	g, err := NewGeometry(f)
	if err != nil {
		t.Fatal(err)
	}
	v, _ := VariantFor(3)
	g.UpdateTexCoords(f, v)
	g.Draw(f)

	if len(f.Draws) != 1 {
		t.Fatalf("draws = %d, want 1", len(f.Draws))
	}
	d := f.Draws[0]
	if d.Mode != gles.TRIANGLE_FAN || d.First != 0 || d.Count != 4 || d.VAO != g.VAO {
		t.Errorf("draw = %+v", d)
	}
	if len(d.TexCoords) != len(v) || Variant(d.TexCoords) != v {
		t.Errorf("texcoords = %v, want %v", d.TexCoords, v)
	}
}

func TestNewGeometryZeroHandle(t *testing.T) {
	f := glestest.New()
	f.ZeroHandles["buffer"] = true
	_, err := NewGeometry(f)
	var re *ResourceError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want *ResourceError", err)
	}
	if live := f.Live(); len(live) != 0 {
		t.Errorf("leaked objects: %v", live)
	}
}
