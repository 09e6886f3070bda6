// Package glestest provides an in-memory gles.Context for tests.
//
// The fake keeps object tables and bound state the way a driver would,
// records draw calls with the state they saw, and can be told to fail
// shader compilation, program linking or to report a GL error.
package glestest

import (
	"fmt"
	"sort"

	"tapquad/internal/gles"
)

// Shader is a shader object as the fake driver tracks it.
type Shader struct {
	Kind     gles.Enum
	Source   string
	Compiled bool
	Log      string
	Deleted  bool
}

// Program tracks attachments, link state and the uniform values set
// while the program was current.
type Program struct {
	Attached map[uint32]bool
	Attribs  map[string]uint32
	Linked   bool
	Log      string
	Deleted  bool

	uniformNames map[string]int32
	Uniforms     map[string]any
}

// Buffer holds the last uploaded data and how many uploads it received.
type Buffer struct {
	Data    []float32
	Size    int
	Usage   gles.Enum
	Uploads int
	Deleted bool
}

// VertexArray records the attribute bindings captured by the array.
type VertexArray struct {
	// Attribs maps an attribute index to the buffer bound when its
	// pointer was specified.
	Attribs map[uint32]uint32
	Enabled map[uint32]bool
	Deleted bool
}

// Texture holds the parameters and level-0 image of a texture object.
type Texture struct {
	Params    map[gles.Enum]int
	Width     int
	Height    int
	Format    gles.Enum
	Pix       []byte
	Mipmapped bool
	Deleted   bool
}

// Draw is a snapshot of the state a DrawArrays call observed.
type Draw struct {
	Mode     gles.Enum
	First    int
	Count    int
	Program  uint32
	VAO      uint32
	Texture  uint32
	Uniforms map[string]any
	// TexCoords is the data of the buffer feeding attribute 1, nil when
	// that buffer was never filled.
	TexCoords []float32
}

// Fake implements gles.Context.
type Fake struct {
	next uint32

	Shaders      map[uint32]*Shader
	Programs     map[uint32]*Program
	Buffers      map[uint32]*Buffer
	VertexArrays map[uint32]*VertexArray
	Textures     map[uint32]*Texture

	CurrentProgram uint32
	BoundVAO       uint32
	BoundBuffer    uint32
	BoundTexture   uint32
	ActiveUnit     gles.Enum

	Enabled         map[gles.Enum]bool
	DepthFn         gles.Enum
	ClearRGBA       [4]float32
	Clears          []gles.Enum
	ViewportRect    [4]int
	UnpackAlignment int32
	Strings         map[gles.Enum]string
	Draws           []Draw

	// Ops logs every detach and delete call in order.
	Ops []string

	// CompileFails returns a non-empty log to make compilation fail.
	CompileFails func(kind gles.Enum, src string) string
	// LinkFails returns a non-empty log to make linking fail.
	LinkFails func(p *Program) string
	// PendingError is returned once by GetError.
	PendingError gles.Enum
	// ZeroHandles makes the Create* calls for the named object kind
	// ("vao", "buffer", "texture") return 0.
	ZeroHandles map[string]bool
}

// New returns an empty fake with GL ES 3.2 version strings.
func New() *Fake {
	return &Fake{
		Shaders:      make(map[uint32]*Shader),
		Programs:     make(map[uint32]*Program),
		Buffers:      make(map[uint32]*Buffer),
		VertexArrays: make(map[uint32]*VertexArray),
		Textures:     make(map[uint32]*Texture),
		Enabled:      make(map[gles.Enum]bool),
		ZeroHandles:  make(map[string]bool),
		Strings: map[gles.Enum]string{
			gles.VERSION:                  "OpenGL ES 3.2 fake",
			gles.SHADING_LANGUAGE_VERSION: "OpenGL ES GLSL ES 3.20 fake",
		},
		UnpackAlignment: 4,
	}
}

var _ gles.Context = (*Fake)(nil)

func (f *Fake) op(format string, args ...any) {
	f.Ops = append(f.Ops, fmt.Sprintf(format, args...))
}

func (f *Fake) id() uint32 {
	f.next++
	return f.next
}

// Live lists every object that was created and not yet deleted.
func (f *Fake) Live() []string {
	var out []string
	for id, s := range f.Shaders {
		if !s.Deleted {
			out = append(out, fmt.Sprintf("shader %d", id))
		}
	}
	for id, p := range f.Programs {
		if !p.Deleted {
			out = append(out, fmt.Sprintf("program %d", id))
		}
	}
	for id, b := range f.Buffers {
		if !b.Deleted {
			out = append(out, fmt.Sprintf("buffer %d", id))
		}
	}
	for id, v := range f.VertexArrays {
		if !v.Deleted {
			out = append(out, fmt.Sprintf("vao %d", id))
		}
	}
	for id, t := range f.Textures {
		if !t.Deleted {
			out = append(out, fmt.Sprintf("texture %d", id))
		}
	}
	sort.Strings(out)
	return out
}

func (f *Fake) GetString(name gles.Enum) string { return f.Strings[name] }

func (f *Fake) GetError() gles.Enum {
	err := f.PendingError
	f.PendingError = gles.NO_ERROR
	return err
}

func (f *Fake) CreateShader(kind gles.Enum) uint32 {
	id := f.id()
	f.Shaders[id] = &Shader{Kind: kind}
	return id
}

func (f *Fake) ShaderSource(shader uint32, src string) {
	if s := f.Shaders[shader]; s != nil {
		s.Source = src
	}
}

func (f *Fake) CompileShader(shader uint32) {
	s := f.Shaders[shader]
	if s == nil {
		return
	}
	if f.CompileFails != nil {
		if log := f.CompileFails(s.Kind, s.Source); log != "" {
			s.Log = log
			s.Compiled = false
			return
		}
	}
	s.Compiled = true
}

func (f *Fake) GetShaderi(shader uint32, pname gles.Enum) int {
	s := f.Shaders[shader]
	if s == nil {
		return 0
	}
	switch pname {
	case gles.COMPILE_STATUS:
		if s.Compiled {
			return gles.TRUE
		}
		return gles.FALSE
	case gles.INFO_LOG_LENGTH:
		if s.Log == "" {
			return 0
		}
		return len(s.Log) + 1
	}
	return 0
}

func (f *Fake) GetShaderInfoLog(shader uint32) string {
	if s := f.Shaders[shader]; s != nil {
		return s.Log
	}
	return ""
}

func (f *Fake) DeleteShader(shader uint32) {
	f.op("delete shader %d", shader)
	if s := f.Shaders[shader]; s != nil {
		s.Deleted = true
	}
}

func (f *Fake) CreateProgram() uint32 {
	id := f.id()
	f.Programs[id] = &Program{
		Attached:     make(map[uint32]bool),
		Attribs:      make(map[string]uint32),
		uniformNames: make(map[string]int32),
		Uniforms:     make(map[string]any),
	}
	return id
}

func (f *Fake) AttachShader(program, shader uint32) {
	if p := f.Programs[program]; p != nil {
		p.Attached[shader] = true
	}
}

func (f *Fake) DetachShader(program, shader uint32) {
	f.op("detach shader %d from program %d", shader, program)
	if p := f.Programs[program]; p != nil {
		delete(p.Attached, shader)
	}
}

func (f *Fake) BindAttribLocation(program, index uint32, name string) {
	if p := f.Programs[program]; p != nil {
		p.Attribs[name] = index
	}
}

func (f *Fake) LinkProgram(program uint32) {
	p := f.Programs[program]
	if p == nil {
		return
	}
	if f.LinkFails != nil {
		if log := f.LinkFails(p); log != "" {
			p.Log = log
			p.Linked = false
			return
		}
	}
	for id := range p.Attached {
		if s := f.Shaders[id]; s == nil || !s.Compiled {
			p.Log = fmt.Sprintf("shader %d not compiled", id)
			p.Linked = false
			return
		}
	}
	p.Linked = true
}

func (f *Fake) GetProgrami(program uint32, pname gles.Enum) int {
	p := f.Programs[program]
	if p == nil {
		return 0
	}
	switch pname {
	case gles.LINK_STATUS:
		if p.Linked {
			return gles.TRUE
		}
		return gles.FALSE
	case gles.INFO_LOG_LENGTH:
		if p.Log == "" {
			return 0
		}
		return len(p.Log) + 1
	}
	return 0
}

func (f *Fake) GetProgramInfoLog(program uint32) string {
	if p := f.Programs[program]; p != nil {
		return p.Log
	}
	return ""
}

func (f *Fake) GetUniformLocation(program uint32, name string) int32 {
	p := f.Programs[program]
	if p == nil || !p.Linked {
		return -1
	}
	if loc, ok := p.uniformNames[name]; ok {
		return loc
	}
	loc := int32(len(p.uniformNames))
	p.uniformNames[name] = loc
	return loc
}

func (f *Fake) UseProgram(program uint32) { f.CurrentProgram = program }

func (f *Fake) DeleteProgram(program uint32) {
	f.op("delete program %d", program)
	if p := f.Programs[program]; p != nil {
		p.Deleted = true
	}
}

func (f *Fake) setUniform(location int32, v any) {
	p := f.Programs[f.CurrentProgram]
	if p == nil || location < 0 {
		return
	}
	for name, loc := range p.uniformNames {
		if loc == location {
			p.Uniforms[name] = v
			return
		}
	}
}

func (f *Fake) UniformMatrix4fv(location int32, m []float32) {
	f.setUniform(location, append([]float32(nil), m...))
}

func (f *Fake) Uniform1i(location int32, v int) { f.setUniform(location, v) }

func (f *Fake) CreateVertexArray() uint32 {
	if f.ZeroHandles["vao"] {
		return 0
	}
	id := f.id()
	f.VertexArrays[id] = &VertexArray{
		Attribs: make(map[uint32]uint32),
		Enabled: make(map[uint32]bool),
	}
	return id
}

func (f *Fake) BindVertexArray(vao uint32) { f.BoundVAO = vao }

func (f *Fake) DeleteVertexArray(vao uint32) {
	f.op("delete vertex array %d", vao)
	if v := f.VertexArrays[vao]; v != nil {
		v.Deleted = true
	}
}

func (f *Fake) CreateBuffer() uint32 {
	if f.ZeroHandles["buffer"] {
		return 0
	}
	id := f.id()
	f.Buffers[id] = &Buffer{}
	return id
}

func (f *Fake) BindBuffer(target gles.Enum, buf uint32) { f.BoundBuffer = buf }

func (f *Fake) BufferData(target gles.Enum, data []float32, usage gles.Enum) {
	b := f.Buffers[f.BoundBuffer]
	if b == nil {
		return
	}
	b.Data = append([]float32(nil), data...)
	b.Size = len(data) * 4
	b.Usage = usage
	b.Uploads++
}

func (f *Fake) BufferInit(target gles.Enum, size int, usage gles.Enum) {
	b := f.Buffers[f.BoundBuffer]
	if b == nil {
		return
	}
	b.Data = nil
	b.Size = size
	b.Usage = usage
}

func (f *Fake) VertexAttribPointer(index uint32, size int, kind gles.Enum, normalized bool, stride, offset int) {
	if v := f.VertexArrays[f.BoundVAO]; v != nil {
		v.Attribs[index] = f.BoundBuffer
	}
}

func (f *Fake) EnableVertexAttribArray(index uint32) {
	if v := f.VertexArrays[f.BoundVAO]; v != nil {
		v.Enabled[index] = true
	}
}

func (f *Fake) DeleteBuffer(buf uint32) {
	f.op("delete buffer %d", buf)
	if b := f.Buffers[buf]; b != nil {
		b.Deleted = true
	}
}

func (f *Fake) CreateTexture() uint32 {
	if f.ZeroHandles["texture"] {
		return 0
	}
	id := f.id()
	f.Textures[id] = &Texture{Params: make(map[gles.Enum]int)}
	return id
}

func (f *Fake) ActiveTexture(unit gles.Enum) { f.ActiveUnit = unit }

func (f *Fake) BindTexture(target gles.Enum, tex uint32) { f.BoundTexture = tex }

func (f *Fake) PixelStorei(pname gles.Enum, param int32) {
	if pname == gles.UNPACK_ALIGNMENT {
		f.UnpackAlignment = param
	}
}

func (f *Fake) TexParameteri(target, pname gles.Enum, param int) {
	if t := f.Textures[f.BoundTexture]; t != nil {
		t.Params[pname] = param
	}
}

func (f *Fake) TexImage2D(target gles.Enum, level, internalFormat, width, height int, format, kind gles.Enum, pix []byte) {
	t := f.Textures[f.BoundTexture]
	if t == nil || level != 0 {
		return
	}
	t.Width, t.Height, t.Format = width, height, format
	t.Pix = append([]byte(nil), pix...)
}

func (f *Fake) GenerateMipmap(target gles.Enum) {
	if t := f.Textures[f.BoundTexture]; t != nil {
		t.Mipmapped = true
	}
}

func (f *Fake) DeleteTexture(tex uint32) {
	f.op("delete texture %d", tex)
	if t := f.Textures[tex]; t != nil {
		t.Deleted = true
	}
}

func (f *Fake) Enable(capability gles.Enum) { f.Enabled[capability] = true }

func (f *Fake) DepthFunc(fn gles.Enum) { f.DepthFn = fn }

func (f *Fake) ClearColor(r, g, b, a float32) { f.ClearRGBA = [4]float32{r, g, b, a} }

func (f *Fake) Clear(mask gles.Enum) { f.Clears = append(f.Clears, mask) }

func (f *Fake) Viewport(x, y, width, height int) { f.ViewportRect = [4]int{x, y, width, height} }

func (f *Fake) DrawArrays(mode gles.Enum, first, count int) {
	d := Draw{
		Mode:    mode,
		First:   first,
		Count:   count,
		Program: f.CurrentProgram,
		VAO:     f.BoundVAO,
		Texture: f.BoundTexture,
	}
	if p := f.Programs[f.CurrentProgram]; p != nil {
		d.Uniforms = make(map[string]any, len(p.Uniforms))
		for k, v := range p.Uniforms {
			d.Uniforms[k] = v
		}
	}
	if v := f.VertexArrays[f.BoundVAO]; v != nil {
		if b := f.Buffers[v.Attribs[1]]; b != nil && b.Data != nil {
			d.TexCoords = append([]float32(nil), b.Data...)
		}
	}
	f.Draws = append(f.Draws, d)
}
