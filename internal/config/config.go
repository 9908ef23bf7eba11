package config

import (
	"fmt"

	"github.com/spacehole-rogue/autodock/internal/game"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "autodock.cfg.json"

// WindowConfig holds host window settings.
type WindowConfig struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
}

// JournalConfig holds dock journal settings.
type JournalConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Path    string `json:"path" mapstructure:"path"` // empty means in-memory
}

// DockConfig mirrors game.Tuning field for field.
type DockConfig struct {
	ArcRadius      float64 `json:"arcRadius" mapstructure:"arcRadius"`
	ArcMs          float64 `json:"arcMs" mapstructure:"arcMs"`
	SettleMs       float64 `json:"settleMs" mapstructure:"settleMs"`
	RotClamp       float64 `json:"rotClamp" mapstructure:"rotClamp"`
	Proximity      float64 `json:"proximity" mapstructure:"proximity"`
	RearmDistance  float64 `json:"rearmDistance" mapstructure:"rearmDistance"`
	EgressDistance float64 `json:"egressDistance" mapstructure:"egressDistance"`
	EgressMs       float64 `json:"egressMs" mapstructure:"egressMs"`
	AbortHoldMs    float64 `json:"abortHoldMs" mapstructure:"abortHoldMs"`
	RefuelFillMs   float64 `json:"refuelFillMs" mapstructure:"refuelFillMs"`
	UndockDelayMs  float64 `json:"undockDelayMs" mapstructure:"undockDelayMs"`
	EjectDelayMs   float64 `json:"ejectDelayMs" mapstructure:"ejectDelayMs"`
	EjectOffset    float64 `json:"ejectOffset" mapstructure:"ejectOffset"`
	EjectLockMs    float64 `json:"ejectLockMs" mapstructure:"ejectLockMs"`
	BonusRadius    float64 `json:"bonusRadius" mapstructure:"bonusRadius"`
}

// Config is the full host configuration.
type Config struct {
	LogLevel string        `json:"logLevel" mapstructure:"logLevel"`
	LogFile  string        `json:"logFile" mapstructure:"logFile"`
	Seed     uint64        `json:"seed" mapstructure:"seed"`
	Scenario string        `json:"scenario" mapstructure:"scenario"`
	Window   WindowConfig  `json:"window" mapstructure:"window"`
	Journal  JournalConfig `json:"journal" mapstructure:"journal"`
	Dock     DockConfig    `json:"dock" mapstructure:"dock"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "")
	viper.SetDefault("seed", 1)
	viper.SetDefault("scenario", "default")

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.title", "SpaceHole Auto-Dock")

	viper.SetDefault("journal.enabled", true)
	viper.SetDefault("journal.path", "autodock_journal.db")

	t := game.DefaultTuning()
	viper.SetDefault("dock.arcRadius", t.ArcRadius)
	viper.SetDefault("dock.arcMs", t.ArcMs)
	viper.SetDefault("dock.settleMs", t.SettleMs)
	viper.SetDefault("dock.rotClamp", t.RotClamp)
	viper.SetDefault("dock.proximity", t.Proximity)
	viper.SetDefault("dock.rearmDistance", t.RearmDistance)
	viper.SetDefault("dock.egressDistance", t.EgressDistance)
	viper.SetDefault("dock.egressMs", t.EgressMs)
	viper.SetDefault("dock.abortHoldMs", t.AbortHoldMs)
	viper.SetDefault("dock.refuelFillMs", t.RefuelFillMs)
	viper.SetDefault("dock.undockDelayMs", t.UndockDelayMs)
	viper.SetDefault("dock.ejectDelayMs", t.EjectDelayMs)
	viper.SetDefault("dock.ejectOffset", t.EjectOffset)
	viper.SetDefault("dock.ejectLockMs", t.EjectLockMs)
	viper.SetDefault("dock.bonusRadius", t.BonusRadius)
}

// Load sets defaults and reads autodock.cfg.json from configDir. An empty
// configDir skips the file and yields pure defaults.
func Load(configDir string) (*Config, error) {
	setDefaults()

	if configDir != "" {
		viper.SetConfigName(FileName)
		viper.AddConfigPath(configDir)
		viper.SetConfigType("json")
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	d := c.Dock
	for name, v := range map[string]float64{
		"arcMs":        d.ArcMs,
		"settleMs":     d.SettleMs,
		"rotClamp":     d.RotClamp,
		"proximity":    d.Proximity,
		"refuelFillMs": d.RefuelFillMs,
	} {
		if v <= 0 {
			return fmt.Errorf("dock.%s must be positive, got %v", name, v)
		}
	}
	if d.RearmDistance != 0 && d.RearmDistance <= d.Proximity {
		return fmt.Errorf("dock.rearmDistance %v must exceed dock.proximity %v", d.RearmDistance, d.Proximity)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d is invalid", c.Window.Width, c.Window.Height)
	}
	return nil
}

// Tuning converts the dock section into simulation tunables.
func (c *Config) Tuning() game.Tuning {
	d := c.Dock
	return game.Tuning{
		ArcRadius:      d.ArcRadius,
		ArcMs:          d.ArcMs,
		SettleMs:       d.SettleMs,
		RotClamp:       d.RotClamp,
		Proximity:      d.Proximity,
		RearmDistance:  d.RearmDistance,
		EgressDistance: d.EgressDistance,
		EgressMs:       d.EgressMs,
		AbortHoldMs:    d.AbortHoldMs,
		RefuelFillMs:   d.RefuelFillMs,
		UndockDelayMs:  d.UndockDelayMs,
		EjectDelayMs:   d.EjectDelayMs,
		EjectOffset:    d.EjectOffset,
		EjectLockMs:    d.EjectLockMs,
		BonusRadius:    d.BonusRadius,
	}
}
