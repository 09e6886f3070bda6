package render

import (
	"strings"

	"tapquad/internal/gles"
)

// ShaderProgram is the linked quad program and its uniform locations.
// Both stages stay attached until Release.
type ShaderProgram struct {
	Vertex   uint32
	Fragment uint32
	Program  uint32

	MVP     int32
	Sampler int32
	TapFlag int32
}

func stageName(kind gles.Enum) string {
	if kind == gles.VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}

func compileShader(ctx gles.Context, kind gles.Enum, src string) (uint32, error) {
	shader := ctx.CreateShader(kind)
	if shader == 0 {
		return 0, &ResourceError{What: stageName(kind) + " shader", Code: ctx.GetError()}
	}
	ctx.ShaderSource(shader, src)
	ctx.CompileShader(shader)

	if ctx.GetShaderi(shader, gles.COMPILE_STATUS) == gles.FALSE {
		log := strings.TrimSpace(ctx.GetShaderInfoLog(shader))
		if log == "" {
			log = "no diagnostic log"
		}
		ctx.DeleteShader(shader)
		return 0, &CompileError{Stage: stageName(kind), Log: log}
	}
	return shader, nil
}

// BuildProgram compiles both stages, binds vPosition and vTexCoord to
// their fixed locations, links, and resolves the uniform locations.
// On failure every object created here has already been deleted.
func BuildProgram(ctx gles.Context, vertexSrc, fragmentSrc string) (*ShaderProgram, error) {
	vs, err := compileShader(ctx, gles.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return nil, err
	}
	fs, err := compileShader(ctx, gles.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		ctx.DeleteShader(vs)
		return nil, err
	}

	program := ctx.CreateProgram()
	if program == 0 {
		ctx.DeleteShader(vs)
		ctx.DeleteShader(fs)
		return nil, &ResourceError{What: "program", Code: ctx.GetError()}
	}
	ctx.AttachShader(program, vs)
	ctx.AttachShader(program, fs)
	ctx.BindAttribLocation(program, AttribPosition, "vPosition")
	ctx.BindAttribLocation(program, AttribTexCoord, "vTexCoord")
	ctx.LinkProgram(program)

	if ctx.GetProgrami(program, gles.LINK_STATUS) == gles.FALSE {
		log := strings.TrimSpace(ctx.GetProgramInfoLog(program))
		if log == "" {
			log = "no diagnostic log"
		}
		ctx.DetachShader(program, vs)
		ctx.DetachShader(program, fs)
		ctx.DeleteShader(vs)
		ctx.DeleteShader(fs)
		ctx.DeleteProgram(program)
		return nil, &LinkError{Log: log}
	}

	return &ShaderProgram{
		Vertex:   vs,
		Fragment: fs,
		Program:  program,
		MVP:      ctx.GetUniformLocation(program, uniformMVP),
		Sampler:  ctx.GetUniformLocation(program, uniformTexture),
		TapFlag:  ctx.GetUniformLocation(program, uniformTapFlag),
	}, nil
}

// Release detaches and deletes both stages, then the program.
// Zero handles are skipped, so calling it twice is harmless.
func (p *ShaderProgram) Release(ctx gles.Context) {
	if p == nil || p.Program == 0 {
		return
	}
	if p.Vertex != 0 {
		ctx.DetachShader(p.Program, p.Vertex)
		ctx.DeleteShader(p.Vertex)
		p.Vertex = 0
	}
	if p.Fragment != 0 {
		ctx.DetachShader(p.Program, p.Fragment)
		ctx.DeleteShader(p.Fragment)
		p.Fragment = 0
	}
	ctx.DeleteProgram(p.Program)
	p.Program = 0
}
