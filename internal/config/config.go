package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/spf13/viper"

	"ridgerun/internal/terrain"
)

// Config is the immutable options record supplied at construction. Nothing
// reads it after the session is built, so there is no runtime
// reconfiguration path.
type Config struct {
	LogLevel string `mapstructure:"logLevel"`

	GridSize     int   `mapstructure:"gridSize"`
	MaxHeight    int   `mapstructure:"maxHeight"`
	MaxVariation int   `mapstructure:"maxVariation"`
	Seed         int64 `mapstructure:"seed"`

	ViewDistance   int `mapstructure:"viewDistance"`
	ViewportWidth  int `mapstructure:"viewportWidth"`
	ViewportHeight int `mapstructure:"viewportHeight"`
	Horizon        int `mapstructure:"horizon"`

	MaxAltitude int `mapstructure:"maxAltitude"`
	Thrust      int `mapstructure:"thrust"`
	RollToAngle int `mapstructure:"rollToAngle"`

	TPS   int `mapstructure:"tps"`
	Scale int `mapstructure:"scale"`

	SkyColor      string `mapstructure:"skyColor"`
	MountainLow   string `mapstructure:"mountainLow"`
	MountainHigh  string `mapstructure:"mountainHigh"`
	EdgeColor     string `mapstructure:"edgeColor"`
	FractalRelief bool   `mapstructure:"fractalRelief"`
}

// Load reads ridgerun.json from configDir on top of full defaults and
// returns the validated configuration. A missing config file is fine; a
// malformed or invalid one is not.
func Load(configDir string) (Config, error) {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("gridSize", 64)
	viper.SetDefault("maxHeight", 255)
	viper.SetDefault("maxVariation", 2)
	viper.SetDefault("seed", 1337)

	viper.SetDefault("viewDistance", 12)
	viper.SetDefault("viewportWidth", 256)
	viper.SetDefault("viewportHeight", 192)
	viper.SetDefault("horizon", 96)

	viper.SetDefault("maxAltitude", 480)
	viper.SetDefault("thrust", 3)
	viper.SetDefault("rollToAngle", 1)

	viper.SetDefault("tps", 30)
	viper.SetDefault("scale", 3)

	viper.SetDefault("skyColor", "#87b8e0")
	viper.SetDefault("mountainLow", "#2e5a32")
	viper.SetDefault("mountainHigh", "#d8d8e8")
	viper.SetDefault("edgeColor", "#1a1a28")
	viper.SetDefault("fractalRelief", true)

	viper.SetConfigName("ridgerun")
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshaling: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate enforces the construction-time invariants the rest of the core
// assumes unconditionally. It must reject anything the renderer or map
// would otherwise silently garble.
func (c Config) Validate() error {
	if c.GridSize < 8 || c.GridSize&(c.GridSize-1) != 0 {
		return fmt.Errorf("config: gridSize %d must be a power of two >= 8", c.GridSize)
	}
	if c.MaxHeight < 1 || c.MaxHeight > 255 {
		return fmt.Errorf("config: maxHeight %d outside [1, 255]", c.MaxHeight)
	}
	if c.MaxVariation < 1 {
		return fmt.Errorf("config: maxVariation %d must be positive", c.MaxVariation)
	}
	if c.ViewDistance < 2 || c.ViewDistance >= c.GridSize/2 {
		return fmt.Errorf("config: viewDistance %d outside [2, gridSize/2)", c.ViewDistance)
	}
	if c.ViewportWidth < 2 || c.ViewportHeight < 2 {
		return fmt.Errorf("config: viewport %dx%d too small", c.ViewportWidth, c.ViewportHeight)
	}
	if c.Horizon < 0 || c.Horizon > c.ViewportHeight {
		return fmt.Errorf("config: horizon %d outside viewport height %d", c.Horizon, c.ViewportHeight)
	}
	if c.MaxAltitude < 1 {
		return fmt.Errorf("config: maxAltitude %d must be positive", c.MaxAltitude)
	}
	if c.TPS < 1 {
		return fmt.Errorf("config: tps %d must be positive", c.TPS)
	}
	if c.Scale < 1 {
		return fmt.Errorf("config: scale %d must be positive", c.Scale)
	}
	for _, s := range []string{c.SkyColor, c.MountainLow, c.MountainHigh, c.EdgeColor} {
		if _, err := ParseColor(s); err != nil {
			return err
		}
	}
	return nil
}

// SpaceSize returns the side of the wrapped position coordinate space.
func (c Config) SpaceSize() int {
	return c.GridSize << terrain.CellShift
}

// ParseColor decodes a "#rrggbb" hex color.
func ParseColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("config: bad color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustColor is ParseColor for values already validated.
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
