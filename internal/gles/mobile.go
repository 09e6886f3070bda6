//go:build android

package gles

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/gl"
)

type mobile struct {
	ctx gl.Context
}

// NewMobile adapts an x/mobile GL ES context handed out by the app
// lifecycle. The context is only valid until the surface goes away.
func NewMobile(ctx gl.Context) Context {
	return mobile{ctx: ctx}
}

func program(p uint32) gl.Program { return gl.Program{Init: true, Value: p} }
func shader(s uint32) gl.Shader   { return gl.Shader{Value: s} }
func attrib(i uint32) gl.Attrib   { return gl.Attrib{Value: uint(i)} }
func uniform(l int32) gl.Uniform  { return gl.Uniform{Value: l} }

func (m mobile) GetString(name Enum) string { return m.ctx.GetString(gl.Enum(name)) }

func (m mobile) GetError() Enum { return Enum(m.ctx.GetError()) }

func (m mobile) CreateShader(kind Enum) uint32 { return m.ctx.CreateShader(gl.Enum(kind)).Value }

func (m mobile) ShaderSource(s uint32, src string) { m.ctx.ShaderSource(shader(s), src) }

func (m mobile) CompileShader(s uint32) { m.ctx.CompileShader(shader(s)) }

func (m mobile) GetShaderi(s uint32, pname Enum) int {
	return m.ctx.GetShaderi(shader(s), gl.Enum(pname))
}

func (m mobile) GetShaderInfoLog(s uint32) string { return m.ctx.GetShaderInfoLog(shader(s)) }

func (m mobile) DeleteShader(s uint32) { m.ctx.DeleteShader(shader(s)) }

func (m mobile) CreateProgram() uint32 { return m.ctx.CreateProgram().Value }

func (m mobile) AttachShader(p, s uint32) { m.ctx.AttachShader(program(p), shader(s)) }

func (m mobile) DetachShader(p, s uint32) { m.ctx.DetachShader(program(p), shader(s)) }

func (m mobile) BindAttribLocation(p, index uint32, name string) {
	m.ctx.BindAttribLocation(program(p), attrib(index), name)
}

func (m mobile) LinkProgram(p uint32) { m.ctx.LinkProgram(program(p)) }

func (m mobile) GetProgrami(p uint32, pname Enum) int {
	return m.ctx.GetProgrami(program(p), gl.Enum(pname))
}

func (m mobile) GetProgramInfoLog(p uint32) string { return m.ctx.GetProgramInfoLog(program(p)) }

func (m mobile) GetUniformLocation(p uint32, name string) int32 {
	return m.ctx.GetUniformLocation(program(p), name).Value
}

func (m mobile) UseProgram(p uint32) { m.ctx.UseProgram(program(p)) }

func (m mobile) DeleteProgram(p uint32) { m.ctx.DeleteProgram(program(p)) }

func (m mobile) UniformMatrix4fv(location int32, v []float32) {
	m.ctx.UniformMatrix4fv(uniform(location), v)
}

func (m mobile) Uniform1i(location int32, v int) { m.ctx.Uniform1i(uniform(location), v) }

func (m mobile) CreateVertexArray() uint32 { return m.ctx.CreateVertexArray().Value }

func (m mobile) BindVertexArray(vao uint32) { m.ctx.BindVertexArray(gl.VertexArray{Value: vao}) }

func (m mobile) DeleteVertexArray(vao uint32) { m.ctx.DeleteVertexArray(gl.VertexArray{Value: vao}) }

func (m mobile) CreateBuffer() uint32 { return m.ctx.CreateBuffer().Value }

func (m mobile) BindBuffer(target Enum, buf uint32) {
	m.ctx.BindBuffer(gl.Enum(target), gl.Buffer{Value: buf})
}

func (m mobile) BufferData(target Enum, data []float32, usage Enum) {
	m.ctx.BufferData(gl.Enum(target), f32.Bytes(binary.LittleEndian, data...), gl.Enum(usage))
}

func (m mobile) BufferInit(target Enum, size int, usage Enum) {
	m.ctx.BufferInit(gl.Enum(target), size, gl.Enum(usage))
}

func (m mobile) VertexAttribPointer(index uint32, size int, kind Enum, normalized bool, stride, offset int) {
	m.ctx.VertexAttribPointer(attrib(index), size, gl.Enum(kind), normalized, stride, offset)
}

func (m mobile) EnableVertexAttribArray(index uint32) { m.ctx.EnableVertexAttribArray(attrib(index)) }

func (m mobile) DeleteBuffer(buf uint32) { m.ctx.DeleteBuffer(gl.Buffer{Value: buf}) }

func (m mobile) CreateTexture() uint32 { return m.ctx.CreateTexture().Value }

func (m mobile) ActiveTexture(unit Enum) { m.ctx.ActiveTexture(gl.Enum(unit)) }

func (m mobile) BindTexture(target Enum, tex uint32) {
	m.ctx.BindTexture(gl.Enum(target), gl.Texture{Value: tex})
}

func (m mobile) PixelStorei(pname Enum, param int32) { m.ctx.PixelStorei(gl.Enum(pname), param) }

func (m mobile) TexParameteri(target, pname Enum, param int) {
	m.ctx.TexParameteri(gl.Enum(target), gl.Enum(pname), param)
}

func (m mobile) TexImage2D(target Enum, level, internalFormat, width, height int, format, kind Enum, pix []byte) {
	m.ctx.TexImage2D(gl.Enum(target), level, internalFormat, width, height, gl.Enum(format), gl.Enum(kind), pix)
}

func (m mobile) GenerateMipmap(target Enum) { m.ctx.GenerateMipmap(gl.Enum(target)) }

func (m mobile) DeleteTexture(tex uint32) { m.ctx.DeleteTexture(gl.Texture{Value: tex}) }

func (m mobile) Enable(capability Enum) { m.ctx.Enable(gl.Enum(capability)) }

func (m mobile) DepthFunc(fn Enum) { m.ctx.DepthFunc(gl.Enum(fn)) }

func (m mobile) ClearColor(r, g, b, a float32) { m.ctx.ClearColor(r, g, b, a) }

func (m mobile) Clear(mask Enum) { m.ctx.Clear(gl.Enum(mask)) }

func (m mobile) Viewport(x, y, width, height int) { m.ctx.Viewport(x, y, width, height) }

func (m mobile) DrawArrays(mode Enum, first, count int) {
	m.ctx.DrawArrays(gl.Enum(mode), first, count)
}
