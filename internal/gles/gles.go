// Package gles is the slice of OpenGL the quad renderer talks to.
//
// The same interface is backed by go-gl on desktop and by x/mobile on
// Android, so the renderer never imports a binding directly. Object
// handles are plain uint32 values where 0 means "not created".
package gles

// Enum is a GL enumerant.
type Enum uint32

// Context is the GLES 3.0 / GL 4.1 core subset used by the renderer.
type Context interface {
	GetString(name Enum) string
	GetError() Enum

	CreateShader(kind Enum) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	BindAttribLocation(program, index uint32, name string)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int
	GetProgramInfoLog(program uint32) string
	GetUniformLocation(program uint32, name string) int32
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	UniformMatrix4fv(location int32, m []float32)
	Uniform1i(location int32, v int)

	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	CreateBuffer() uint32
	BindBuffer(target Enum, buf uint32)
	BufferData(target Enum, data []float32, usage Enum)
	BufferInit(target Enum, size int, usage Enum)
	VertexAttribPointer(index uint32, size int, kind Enum, normalized bool, stride, offset int)
	EnableVertexAttribArray(index uint32)
	DeleteBuffer(buf uint32)

	CreateTexture() uint32
	ActiveTexture(unit Enum)
	BindTexture(target Enum, tex uint32)
	PixelStorei(pname Enum, param int32)
	TexParameteri(target, pname Enum, param int)
	TexImage2D(target Enum, level, internalFormat, width, height int, format, kind Enum, pix []byte)
	GenerateMipmap(target Enum)
	DeleteTexture(tex uint32)

	Enable(capability Enum)
	DepthFunc(fn Enum)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Viewport(x, y, width, height int)
	DrawArrays(mode Enum, first, count int)
}
