// Package main runs a headless wave buoyancy simulation and logs body state.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/buoyancy/internal/config"
	"github.com/Faultbox/buoyancy/internal/logger"
	"github.com/Faultbox/buoyancy/internal/scene"
)

var flagDumpConfig = flag.String("dump-config", "", "Write the effective config to this path and exit")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if *flagDumpConfig != "" {
		if err := cfg.SaveTo(*flagDumpConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Writing config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("wave buoyancy simulation",
		zap.Float32("wavelength", cfg.Water.Length),
		zap.Float32("amplitude", cfg.Water.Amplitude),
		zap.Float32("speed", cfg.Water.Speed),
		zap.Int("bodies", len(cfg.Bodies)),
		zap.Float32("duration", cfg.Simulation.Duration),
	)
	logger.Sugar.Debugf("config: %+v", cfg)

	if cfg.Simulation.Duration == 0 {
		logger.Warn("simulation duration is zero, only the initial state is logged")
	}

	s, err := scene.FromConfig(cfg, logger.Named("scene"))
	if err != nil {
		logger.Fatal("failed to build scene", zap.Error(err))
	}
	for _, obj := range s.Objects() {
		logger.Debug("body ready",
			zap.String("name", obj.Name),
			zap.Int("samples", obj.Float.Grid().Count()),
			zap.Float32("total_force", obj.Float.TotalForce()),
		)
	}

	every := uint64(cfg.Simulation.LogEvery)
	s.Run(cfg.Simulation.Duration, func(s *scene.Scene) {
		if every > 0 && s.Ticks()%every == 0 {
			s.LogState()
		}
	})
	s.LogState()

	logger.Info("simulation finished",
		zap.Uint64("ticks", s.Ticks()),
		zap.Float32("elapsed", s.Elapsed()),
		zap.Float32("phase", s.Field().Phase()),
	)
}
