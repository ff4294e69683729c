// Package main draws a live side view of the wave and floating bodies in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/buoyancy/internal/config"
	"github.com/Faultbox/buoyancy/internal/logger"
	"github.com/Faultbox/buoyancy/internal/scene"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the view, so logs only go to the file.
	if err := logger.InitWithFileConfig(cfg.Logging.Level, logger.DefaultFileConfig(logFile(cfg)), false); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	s, err := scene.FromConfig(cfg, logger.Named("scene"))
	if err != nil {
		logger.Error("failed to build scene", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Scene error: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Terminal error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Terminal error: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	v := newView(screen, s)
	if err := v.run(); err != nil {
		logger.Error("view stopped", zap.Error(err))
	}
}

func logFile(cfg *config.Config) string {
	if cfg.Logging.LogFile != "" {
		return cfg.Logging.LogFile
	}
	return "buoyview.log"
}
