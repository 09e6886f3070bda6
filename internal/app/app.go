// Package app hosts the quad on a desktop window or an Android surface
// and routes gestures to it.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"tapquad/internal/asset"
	"tapquad/internal/audio"
	"tapquad/internal/config"
	"tapquad/internal/render"
)

// NewLogger returns a text logger writing to w at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// texturePixels loads the configured image, or draws the smiley when no
// path is set.
func texturePixels(cfg config.Texture) (render.Pixels, error) {
	if cfg.Path == "" {
		return asset.Smiley(config.DefaultSmileySize), nil
	}
	px, err := asset.Open(cfg.Path, asset.Options{FlipY: cfg.FlipY, MaxSize: cfg.MaxSize})
	if err != nil {
		return render.Pixels{}, fmt.Errorf("texture: %w", err)
	}
	return px, nil
}

// openAudio returns nil when sound is disabled or unavailable.
func openAudio(cfg config.Audio, log *slog.Logger) *audio.System {
	if !cfg.Enabled {
		return nil
	}
	snd, err := audio.New(cfg.Volume)
	if err != nil {
		log.Warn("audio init failed, continuing without sound", "err", err)
		return nil
	}
	return snd
}

func renderOptions(cfg config.Config, px render.Pixels, log *slog.Logger) render.Options {
	return render.Options{
		Texture:    px,
		Wrap:       cfg.Texture.Wrap,
		ClearColor: cfg.Render.ClearColor,
		Logger:     log,
	}
}
