package render

import (
	"fmt"
	"strings"

	"tapquad/internal/gles"
)

// Layout describes the channel order of decoded pixel data.
type Layout int

const (
	LayoutRGBA Layout = iota
	LayoutRGB
)

func (l Layout) channels() int {
	if l == LayoutRGB {
		return 3
	}
	return 4
}

func (l Layout) format() gles.Enum {
	if l == LayoutRGB {
		return gles.RGB
	}
	return gles.RGBA
}

// Pixels is a decoded raster, rows tightly packed, first row at the
// bottom of the texture.
type Pixels struct {
	Pix    []byte
	Width  int
	Height int
	Layout Layout
}

// Validate checks the dimensions against the buffer length.
func (p Pixels) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("invalid texture size %dx%d", p.Width, p.Height)
	}
	if want := p.Width * p.Height * p.Layout.channels(); len(p.Pix) != want {
		return fmt.Errorf("texture data is %d bytes, want %d for %dx%d", len(p.Pix), want, p.Width, p.Height)
	}
	return nil
}

// WrapMode selects how coordinates outside [0,1] are sampled. The
// tiled variant (tap 3) only tiles with WrapRepeat.
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapClamp
	WrapMirror
)

func (w WrapMode) String() string {
	switch w {
	case WrapClamp:
		return "clamp"
	case WrapMirror:
		return "mirror"
	default:
		return "repeat"
	}
}

func (w WrapMode) glEnum() gles.Enum {
	switch w {
	case WrapClamp:
		return gles.CLAMP_TO_EDGE
	case WrapMirror:
		return gles.MIRRORED_REPEAT
	default:
		return gles.REPEAT
	}
}

// UnmarshalText accepts "repeat", "clamp" and "mirror".
func (w *WrapMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "repeat":
		*w = WrapRepeat
	case "clamp", "clamp_to_edge":
		*w = WrapClamp
	case "mirror", "mirrored_repeat":
		*w = WrapMirror
	default:
		return fmt.Errorf("unknown wrap mode %q", text)
	}
	return nil
}

// MarshalText writes the name accepted by UnmarshalText.
func (w WrapMode) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// Texture is the mipmapped GPU texture sampled by the quad.
type Texture struct {
	ID   uint32
	Wrap WrapMode
}

// LoadTexture uploads px as level 0 with 1-byte unpack alignment, builds
// the full mipmap chain, and sets linear / linear-mipmap-linear filtering
// plus the wrap mode on both axes.
func LoadTexture(ctx gles.Context, px Pixels, wrap WrapMode) (*Texture, error) {
	if err := px.Validate(); err != nil {
		return nil, &ResourceError{What: "texture: " + err.Error()}
	}

	ctx.PixelStorei(gles.UNPACK_ALIGNMENT, 1)
	tex := ctx.CreateTexture()
	if tex == 0 {
		return nil, &ResourceError{What: "texture", Code: ctx.GetError()}
	}
	ctx.BindTexture(gles.TEXTURE_2D, tex)
	ctx.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_MAG_FILTER, int(gles.LINEAR))
	ctx.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_MIN_FILTER, int(gles.LINEAR_MIPMAP_LINEAR))
	ctx.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_WRAP_S, int(wrap.glEnum()))
	ctx.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_WRAP_T, int(wrap.glEnum()))

	format := px.Layout.format()
	ctx.TexImage2D(gles.TEXTURE_2D, 0, int(format), px.Width, px.Height, format, gles.UNSIGNED_BYTE, px.Pix)
	ctx.GenerateMipmap(gles.TEXTURE_2D)
	ctx.BindTexture(gles.TEXTURE_2D, 0)

	if code := ctx.GetError(); code != gles.NO_ERROR {
		ctx.DeleteTexture(tex)
		return nil, &ResourceError{What: "texture", Code: code}
	}
	return &Texture{ID: tex, Wrap: wrap}, nil
}

// Release deletes the texture object if it exists.
func (t *Texture) Release(ctx gles.Context) {
	if t == nil || t.ID == 0 {
		return
	}
	ctx.DeleteTexture(t.ID)
	t.ID = 0
}
