//go:build !android

package gles

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type desktop struct{}

// NewDesktop loads the GL 4.1 core entry points for the current context.
// A context must already be current on the calling thread.
func NewDesktop() (Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	return desktop{}, nil
}

// glOffset converts a byte offset to unsafe.Pointer for VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

func (desktop) GetString(name Enum) string {
	p := gl.GetString(uint32(name))
	if p == nil {
		return ""
	}
	return gl.GoStr(p)
}

func (desktop) GetError() Enum { return Enum(gl.GetError()) }

func (desktop) CreateShader(kind Enum) uint32 { return gl.CreateShader(uint32(kind)) }

func (desktop) ShaderSource(shader uint32, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (desktop) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (desktop) GetShaderi(shader uint32, pname Enum) int {
	var v int32
	gl.GetShaderiv(shader, uint32(pname), &v)
	return int(v)
}

func (desktop) GetShaderInfoLog(shader uint32) string {
	var logLen int32
	gl.GetShaderiv(shader, uint32(INFO_LOG_LENGTH), &logLen)
	if logLen <= 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func (desktop) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (desktop) CreateProgram() uint32 { return gl.CreateProgram() }

func (desktop) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (desktop) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

func (desktop) BindAttribLocation(program, index uint32, name string) {
	gl.BindAttribLocation(program, index, gl.Str(name+"\x00"))
}

func (desktop) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (desktop) GetProgrami(program uint32, pname Enum) int {
	var v int32
	gl.GetProgramiv(program, uint32(pname), &v)
	return int(v)
}

func (desktop) GetProgramInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, uint32(INFO_LOG_LENGTH), &logLen)
	if logLen <= 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func (desktop) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (desktop) UseProgram(program uint32) { gl.UseProgram(program) }

func (desktop) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (desktop) UniformMatrix4fv(location int32, m []float32) {
	gl.UniformMatrix4fv(location, int32(len(m)/16), false, &m[0])
}

func (desktop) Uniform1i(location int32, v int) { gl.Uniform1i(location, int32(v)) }

func (desktop) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (desktop) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (desktop) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (desktop) CreateBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (desktop) BindBuffer(target Enum, buf uint32) { gl.BindBuffer(uint32(target), buf) }

func (desktop) BufferData(target Enum, data []float32, usage Enum) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data)*4, gl.Ptr(&data[0]), uint32(usage))
}

func (desktop) BufferInit(target Enum, size int, usage Enum) {
	gl.BufferData(uint32(target), size, nil, uint32(usage))
}

func (desktop) VertexAttribPointer(index uint32, size int, kind Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(index, int32(size), uint32(kind), normalized, int32(stride), glOffset(offset))
}

func (desktop) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (desktop) DeleteBuffer(buf uint32) { gl.DeleteBuffers(1, &buf) }

func (desktop) CreateTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (desktop) ActiveTexture(unit Enum) { gl.ActiveTexture(uint32(unit)) }

func (desktop) BindTexture(target Enum, tex uint32) { gl.BindTexture(uint32(target), tex) }

func (desktop) PixelStorei(pname Enum, param int32) { gl.PixelStorei(uint32(pname), param) }

func (desktop) TexParameteri(target, pname Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (desktop) TexImage2D(target Enum, level, internalFormat, width, height int, format, kind Enum, pix []byte) {
	var ptr unsafe.Pointer
	if len(pix) > 0 {
		ptr = gl.Ptr(pix)
	}
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat),
		int32(width), int32(height), 0,
		uint32(format), uint32(kind), ptr)
}

func (desktop) GenerateMipmap(target Enum) { gl.GenerateMipmap(uint32(target)) }

func (desktop) DeleteTexture(tex uint32) { gl.DeleteTextures(1, &tex) }

func (desktop) Enable(capability Enum) { gl.Enable(uint32(capability)) }

func (desktop) DepthFunc(fn Enum) { gl.DepthFunc(uint32(fn)) }

func (desktop) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (desktop) Clear(mask Enum) { gl.Clear(uint32(mask)) }

func (desktop) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (desktop) DrawArrays(mode Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}
