package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile   = flag.String("log", "", "Write logs to this file as well")
	flagDuration  = flag.Float64("duration", 0, "Seconds to simulate (0 keeps config value)")
	flagStep      = flag.Float64("step", 0, "Fixed simulation step in seconds (0 keeps config value)")
	flagAmplitude = flag.Float64("amplitude", -1, "Wave amplitude (negative keeps config value)")
	flagSpeed     = flag.Float64("speed", 0, "Wave phase speed, may be negative (0 keeps config value)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagDuration > 0 {
		cfg.Simulation.Duration = float32(*flagDuration)
	}
	if *flagStep > 0 {
		cfg.Simulation.FixedStep = float32(*flagStep)
	}
	if *flagAmplitude >= 0 {
		cfg.Water.Amplitude = float32(*flagAmplitude)
	}
	if *flagSpeed != 0 {
		cfg.Water.Speed = float32(*flagSpeed)
	}
}
