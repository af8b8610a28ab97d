// Package config handles loading, defaulting, and validation of the
// nustaraux TOML configuration file. Every section maps to a typed struct.
package config

import (
	"errors"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/large-farva/nustar-aux/internal/tle"
)

// Config is the top-level configuration, mirroring the TOML sections.
type Config struct {
	Data    DataConfig    `toml:"data"    json:"data"`
	Logging LoggingConfig `toml:"logging" json:"logging"`
	TLE     TLEConfig     `toml:"tle"     json:"tle"`
	Station StationConfig `toml:"station" json:"station"`
	Predict PredictConfig `toml:"predict" json:"predict"`
}

type DataConfig struct {
	Root string `toml:"root" json:"root"`
}

type LoggingConfig struct {
	Level string `toml:"level" json:"level"` // info or quiet
}

type TLEConfig struct {
	URL            string `toml:"url"             json:"url"`
	TimeoutSeconds int    `toml:"timeout_seconds" json:"timeout_seconds"`
}

type StationConfig struct {
	Name         string  `toml:"name"          json:"name"`
	Latitude     float64 `toml:"latitude"      json:"latitude"`
	Longitude    float64 `toml:"longitude"     json:"longitude"`
	Altitude     float64 `toml:"altitude"      json:"altitude"`
	MinElevation float64 `toml:"min_elevation" json:"min_elevation"`
}

type PredictConfig struct {
	LookaheadHours int `toml:"lookahead_hours" json:"lookahead_hours"`
	StepSeconds    int `toml:"step_seconds"    json:"step_seconds"`
}

// Default returns a Config populated with defaults. The station is the
// Malindi ground station that receives NuSTAR downlinks.
func Default() Config {
	return Config{
		Data: DataConfig{
			Root: ".",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		TLE: TLEConfig{
			URL:            tle.DefaultURL,
			TimeoutSeconds: 30,
		},
		Station: StationConfig{
			Name:         "Malindi",
			Latitude:     -2.9956,
			Longitude:    40.1945,
			Altitude:     12,
			MinElevation: 5,
		},
		Predict: PredictConfig{
			LookaheadHours: 24,
			StepSeconds:    10,
		},
	}
}

// Load reads the TOML file at path, layers it on top of the defaults, and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}

	if err := validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Data.Root == "" {
		return errors.New("data.root must not be empty")
	}
	if cfg.Logging.Level != "info" && cfg.Logging.Level != "quiet" {
		return errors.New("logging.level must be info or quiet")
	}
	if cfg.TLE.URL == "" {
		return errors.New("tle.url must not be empty")
	}
	if cfg.TLE.TimeoutSeconds < 0 {
		return errors.New("tle.timeout_seconds must be >= 0")
	}
	if cfg.Station.Latitude < -90 || cfg.Station.Latitude > 90 {
		return errors.New("station.latitude must be between -90 and 90")
	}
	if cfg.Station.Longitude < -180 || cfg.Station.Longitude > 180 {
		return errors.New("station.longitude must be between -180 and 180")
	}
	if cfg.Station.MinElevation < 0 || cfg.Station.MinElevation > 90 {
		return errors.New("station.min_elevation must be between 0 and 90")
	}
	if cfg.Predict.LookaheadHours < 1 {
		return errors.New("predict.lookahead_hours must be >= 1")
	}
	if cfg.Predict.StepSeconds < 1 {
		return errors.New("predict.step_seconds must be >= 1")
	}
	return nil
}
