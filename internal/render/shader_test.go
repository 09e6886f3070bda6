package render

import (
	"errors"
	"strings"
	"testing"

	"tapquad/internal/gles"
	"tapquad/internal/gles/glestest"
)

// failInvalid rejects sources without an entry point, like a real compiler.
func failInvalid(kind gles.Enum, src string) string {
	if !strings.Contains(src, "void main()") {
		return "ERROR: 0:1: 'main' : function not defined"
	}
	return ""
}

func TestBuildProgram(t *testing.T) {
	f := glestest.New()
	p, err := BuildProgram(f, QuadVertexSrc, QuadFragmentSrc)
	if err != nil {
		t.Fatalf("BuildProgram: %v", err)
	}
	if p.Program == 0 || p.Vertex == 0 || p.Fragment == 0 {
		t.Fatalf("zero handle in %+v", p)
	}
	prog := f.Programs[p.Program]
	if !prog.Linked {
		t.Fatal("program not linked")
	}
	if prog.Attribs["vPosition"] != AttribPosition || prog.Attribs["vTexCoord"] != AttribTexCoord {
		t.Errorf("attrib bindings = %v", prog.Attribs)
	}
	if !prog.Attached[p.Vertex] || !prog.Attached[p.Fragment] {
		t.Error("stages should stay attached until release")
	}
	locs := map[int32]bool{p.MVP: true, p.Sampler: true, p.TapFlag: true}
	if len(locs) != 3 || locs[-1] {
		t.Errorf("uniform locations not resolved: mvp=%d sampler=%d flag=%d", p.MVP, p.Sampler, p.TapFlag)
	}
	if !strings.HasPrefix(f.Shaders[p.Vertex].Source, "#version ") {
		t.Error("vertex source lacks a #version line")
	}
}

func TestBuildProgramCompileError(t *testing.T) {
	tests := []struct {
		name  string
		vs    string
		fs    string
		stage string
	}{
		{"vertex", "#version 300 es\nbroken", QuadFragmentSrc, "vertex"},
		{"fragment", QuadVertexSrc, "#version 300 es\nout vec4 c;", "fragment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := glestest.New()
			f.CompileFails = failInvalid
			_, err := BuildProgram(f, tt.vs, tt.fs)
			var ce *CompileError
			if !errors.As(err, &ce) {
				t.Fatalf("err = %v, want *CompileError", err)
			}
			if ce.Stage != tt.stage {
				t.Errorf("stage = %q, want %q", ce.Stage, tt.stage)
			}
			if ce.Log == "" {
				t.Error("empty diagnostic log")
			}
			if live := f.Live(); len(live) != 0 {
				t.Errorf("leaked objects: %v", live)
			}
		})
	}
}

func TestBuildProgramLinkError(t *testing.T) {
	f := glestest.New()
	f.LinkFails = func(*glestest.Program) string { return "varying outTexCoord mismatch" }
	_, err := BuildProgram(f, QuadVertexSrc, QuadFragmentSrc)
	var le *LinkError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want *LinkError", err)
	}
	if !strings.Contains(le.Log, "mismatch") {
		t.Errorf("log = %q", le.Log)
	}
	if live := f.Live(); len(live) != 0 {
		t.Errorf("leaked objects: %v", live)
	}
}

func TestShaderProgramRelease(t *testing.T) {
	f := glestest.New()
	p, err := BuildProgram(f, QuadVertexSrc, QuadFragmentSrc)
	if err != nil {
		t.Fatal(err)
	}
	prog := p.Program
	p.Release(f)
	p.Release(f)
	if p.Program != 0 || p.Vertex != 0 || p.Fragment != 0 {
		t.Errorf("handles not zeroed: %+v", p)
	}
	if len(f.Programs[prog].Attached) != 0 {
		t.Error("stages still attached after release")
	}
	if live := f.Live(); len(live) != 0 {
		t.Errorf("leaked objects: %v", live)
	}
}
