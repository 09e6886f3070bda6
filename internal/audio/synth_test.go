package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"
)

func samples(t *testing.T, buf []byte) []float32 {
	t.Helper()
	if len(buf)%frameBytes != 0 {
		t.Fatalf("buffer of %d bytes is not whole frames", len(buf))
	}
	out := make([]float32, len(buf)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return out
}

func TestGenTap(t *testing.T) {
	for step := 0; step <= 4; step++ {
		buf := genTap(step)
		if want := int(tapDuration*SampleRate) * frameBytes; len(buf) != want {
			t.Fatalf("step %d: %d bytes, want %d", step, len(buf), want)
		}
		s := samples(t, buf)
		var peak float64
		for i := 0; i < len(s); i += 2 {
			if s[i] != s[i+1] {
				t.Fatalf("step %d frame %d: channels differ", step, i/2)
			}
			peak = math.Max(peak, math.Abs(float64(s[i])))
		}
		if peak == 0 || peak > 1 {
			t.Errorf("step %d: peak %v outside (0,1]", step, peak)
		}
		if s[0] != 0 {
			t.Errorf("step %d: click starts at %v, want silence", step, s[0])
		}
	}
}

func TestSoundReader(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	got, err := io.ReadAll(r)
	if err != nil || len(got) != 5 {
		t.Fatalf("ReadAll = %v, %v", got, err)
	}
	if n, err := r.Read(make([]byte, 4)); n != 0 || err != io.EOF {
		t.Errorf("read past end = %d, %v", n, err)
	}
}

func TestNilSystem(t *testing.T) {
	var s *System
	s.PlayTap(3)
	if err := s.Close(); err != nil {
		t.Errorf("Close on nil system: %v", err)
	}
}

func TestEnvelope(t *testing.T) {
	tests := []struct {
		p, want float64
	}{
		{0, 0},
		{0.002, 0.5},
		{0.004, 1},
		{0.9, 0},
		{1, 0},
	}
	for _, tt := range tests {
		if got := adsr(tt.p, 0.004, 0.5, 0, 0.1); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("adsr(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

type fakePlayer struct {
	done   chan float64
	volume float64
}

func (p *fakePlayer) SetVolume(v float64) { p.volume = v }
func (p *fakePlayer) Play()               {}
func (p *fakePlayer) IsPlaying() bool     { return false }
func (p *fakePlayer) Close() error {
	p.done <- p.volume
	return nil
}

func TestCloseWhileClickStarting(t *testing.T) {
	ready := make(chan struct{})
	close(ready)
	done := make(chan float64, 1)
	var got []byte
	s := &System{
		ready:  ready,
		volume: 0.5,
		newPlayer: func(r io.Reader) player {
			got, _ = io.ReadAll(r)
			return &fakePlayer{done: done}
		},
	}

	s.PlayTap(2)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if v := <-done; v != 0.5 {
		t.Errorf("volume = %v, want 0.5", v)
	}
	if len(got) != len(genTap(2)) {
		t.Errorf("played %d bytes, want %d", len(got), len(genTap(2)))
	}

	s.PlayTap(3)
	select {
	case <-done:
		t.Error("click played after Close")
	default:
	}
}
