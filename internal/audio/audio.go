// Package audio plays the procedural tap click.
package audio

import (
	"io"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 8 // two float32 channels
)

// player is the part of oto.Player a click needs.
type player interface {
	SetVolume(volume float64)
	Play()
	IsPlaying() bool
	Close() error
}

// System owns the output context. A nil *System is valid and silent, so
// hosts keep running without sound when the device cannot be opened.
type System struct {
	ctx       *oto.Context
	ready     chan struct{}
	volume    float64
	newPlayer func(io.Reader) player
}

// New opens the default output device. volume is clamped to [0,1].
func New(volume float64) (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &System{
		ctx:       ctx,
		ready:     ready,
		volume:    clampF(volume, 0, 1),
		newPlayer: func(r io.Reader) player { return ctx.NewPlayer(r) },
	}, nil
}

// PlayTap plays the click for the given tap state without blocking.
// Calls made before the device is ready, or after Close, are dropped.
func (s *System) PlayTap(step int) {
	if s == nil || s.newPlayer == nil || s.volume <= 0 {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	s.play(genTap(step))
}

// play hands the samples to a goroutine. It only uses values copied here,
// so Close may run while the click is still playing.
func (s *System) play(samples []byte) {
	if len(samples) == 0 {
		return
	}
	newPlayer, volume := s.newPlayer, s.volume
	go func() {
		p := newPlayer(&soundReader{data: samples})
		p.SetVolume(volume)
		p.Play()
		for p.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		p.Close()
	}()
}

// Close suspends output. Later PlayTap calls are dropped; clicks already
// started finish on their own players.
func (s *System) Close() error {
	if s == nil || s.ctx == nil {
		s.detach()
		return nil
	}
	err := s.ctx.Suspend()
	s.detach()
	return err
}

func (s *System) detach() {
	if s != nil {
		s.ctx, s.newPlayer = nil, nil
	}
}
