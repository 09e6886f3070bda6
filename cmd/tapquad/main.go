package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pborman/getopt"

	"tapquad/internal/app"
	"tapquad/internal/config"
)

func main() {
	configPath := getopt.StringLong("config", 'c', "", "YAML configuration file", "path")
	texture := getopt.StringLong("texture", 't', "", "image mapped on the quad (default: built-in smiley)", "path")
	width := getopt.IntLong("width", 'w', config.WindowWidth, "width of the window")
	height := getopt.IntLong("height", 'h', config.WindowHeight, "height of the window")
	wrap := getopt.StringLong("wrap", 0, "", "texture wrap mode: repeat, clamp or mirror", "mode")
	mute := getopt.BoolLong("mute", 'm', "disable the tap sound")
	verbose := getopt.BoolLong("verbose", 'v', "log at debug level")
	help := getopt.BoolLong("help", 0, "show this help")
	getopt.Parse()

	if *help {
		getopt.Usage()
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fail(err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		fail(err)
	}
	if getopt.IsSet("texture") {
		cfg.Texture.Path = *texture
	}
	if getopt.IsSet("width") {
		cfg.Window.Width = *width
	}
	if getopt.IsSet("height") {
		cfg.Window.Height = *height
	}
	if getopt.IsSet("wrap") {
		if err := cfg.Texture.Wrap.UnmarshalText([]byte(*wrap)); err != nil {
			fail(fmt.Errorf("--wrap: %w", err))
		}
	}
	if *mute {
		cfg.Audio.Enabled = false
	}
	if *verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	log := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err := app.Run(cfg, log); err != nil {
		log.Error("tapquad stopped", "err", err)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "tapquad: %v\n", err)
	os.Exit(2)
}
