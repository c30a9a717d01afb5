package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings of the self-play driver.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Sim     SimConfig     `mapstructure:"sim"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type GameConfig struct {
	Seed          uint64 `mapstructure:"seed"` // 0 picks a time-based seed
	AllowStepBack bool   `mapstructure:"allow_step_back"`
}

type SimConfig struct {
	Games         int  `mapstructure:"games"`
	StepBackEvery int  `mapstructure:"step_back_every"` // undo every Nth step; 0 disables
	Transcript    bool `mapstructure:"transcript"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

const envPrefix = "CIRULLA"

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.allow_step_back", true)
	v.SetDefault("sim.games", 100)
	v.SetDefault("sim.step_back_every", 0)
	v.SetDefault("sim.transcript", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load reads the configuration from path, if given, with CIRULLA_*
// environment variables taking precedence (CIRULLA_SIM_GAMES=10).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the driver cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Sim.Games < 0 {
		errs = append(errs, fmt.Errorf("sim.games must not be negative, got %d", c.Sim.Games))
	}
	if c.Sim.StepBackEvery < 0 || c.Sim.StepBackEvery == 1 {
		errs = append(errs, fmt.Errorf("sim.step_back_every must be 0 or at least 2, got %d", c.Sim.StepBackEvery))
	}
	if c.Sim.StepBackEvery > 0 && !c.Game.AllowStepBack {
		errs = append(errs, errors.New("sim.step_back_every needs game.allow_step_back"))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown logging.level %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown logging.format %q", c.Logging.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
