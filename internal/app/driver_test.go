package app

import (
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"tapquad/internal/config"
	"tapquad/internal/gles/glestest"
	"tapquad/internal/render"
)

func newTestLifecycle(t *testing.T, requests *int) (*render.Lifecycle, *glestest.Fake) {
	t.Helper()
	f := glestest.New()
	opts := renderOptions(config.Default(), render.Pixels{
		Pix: make([]byte, 4*4*4), Width: 4, Height: 4, Layout: render.LayoutRGBA,
	}, nil)
	opts.RequestRender = func() { *requests++ }
	opts.Exit = func(code int) { t.Errorf("unexpected exit(%d)", code) }
	lc := render.NewLifecycle(opts)
	if err := lc.OnSurfaceCreated(f); err != nil {
		t.Fatal(err)
	}
	return lc, f
}

func TestDriverTap(t *testing.T) {
	var requests int
	lc, _ := newTestLifecycle(t, &requests)
	d := newDriver(lc, func() { t.Error("quit on tap") }, nil)

	d.OnDown(1, 1)
	d.OnSingleTapUp(1, 1)
	d.OnDoubleTap(1, 1)
	d.OnLongPress(1, 1)
	d.OnFling(100, 0)
	if lc.TapCount() != 0 || requests != 0 {
		t.Fatalf("ignored gestures changed state: tap %d, requests %d", lc.TapCount(), requests)
	}

	for want := 1; want <= 5; want++ {
		d.OnSingleTapConfirmed(1, 1)
		if got := lc.TapCount(); got != (want-1)%render.MaxTap+1 {
			t.Errorf("after %d taps state = %d", want, got)
		}
	}
	if requests != 5 {
		t.Errorf("render requests = %d, want 5", requests)
	}
}

func TestDriverScroll(t *testing.T) {
	var requests, quits int
	lc, f := newTestLifecycle(t, &requests)
	d := newDriver(lc, func() { quits++ }, nil)

	d.OnScroll(0, 12)
	d.OnScroll(0, 3)
	if quits != 1 {
		t.Errorf("quit called %d times, want 1", quits)
	}
	if live := f.Live(); len(live) != 0 {
		t.Errorf("objects left after scroll: %v", live)
	}
	d.OnSingleTapConfirmed(0, 0)
	if lc.TapCount() != 0 {
		t.Error("tap handled after quitting")
	}
}

type clicks []int

func (c *clicks) PlayTap(step int) { *c = append(*c, step) }

func TestSinksClickPerTap(t *testing.T) {
	var requests int
	var got clicks
	lc, _ := newTestLifecycle(t, &requests)
	s := newSinks(lc, &got, func() {}, nil)

	s.OnDoubleTap(1, 1)
	s.OnLongPress(1, 1)
	for range 5 {
		s.OnSingleTapConfirmed(1, 1)
	}
	want := clicks{1, 2, 3, 4, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("clicks = %v, want %v", got, want)
	}

	s.OnScroll(0, 10)
	s.OnSingleTapConfirmed(1, 1)
	if len(got) != len(want) {
		t.Errorf("clicked after quitting: %v", got)
	}
}

func TestSinksNilAudio(t *testing.T) {
	var requests int
	lc, _ := newTestLifecycle(t, &requests)
	s := newSinks(lc, openAudio(config.Audio{}, nil), func() {}, nil)
	s.OnSingleTapConfirmed(1, 1)
	if lc.TapCount() != 1 {
		t.Errorf("tap state = %d, want 1", lc.TapCount())
	}
}

func TestTexturePixelsDefault(t *testing.T) {
	px, err := texturePixels(config.Default().Texture)
	if err != nil {
		t.Fatal(err)
	}
	if px.Width != config.DefaultSmileySize || px.Validate() != nil {
		t.Errorf("smiley = %dx%d", px.Width, px.Height)
	}
	if _, err := texturePixels(config.Texture{Path: "/nonexistent/face.png"}); err == nil {
		t.Error("missing texture accepted")
	}
}

func TestOpenAudioDisabled(t *testing.T) {
	if snd := openAudio(config.Audio{Enabled: false}, nil); snd != nil {
		t.Error("disabled audio opened a device")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelWarn)
	log.Info("hidden")
	log.Warn("shown", "k", 1)
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("log output = %q", out)
	}
}
