package tactile

import (
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
)

// Default thresholds. Distances are in touch-space units and must be
// recalibrated if the host changes the coordinate range.
const (
	DefaultLongPress        = 700 * time.Millisecond
	DefaultMaxTapInterval   = 300 * time.Millisecond
	DefaultMinSwipeDistance = 0.1
	DefaultDragThreshold    = 0.01
	DefaultPinchThreshold   = 0.05
	DefaultMovementRadius   = 0.09
	DefaultDeadzone         = 0.1
)

// Duration is a time.Duration that reads and writes as a string such as
// "700ms" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// GestureConfig holds the timing and distance thresholds of a GestureEngine.
type GestureConfig struct {
	LongPress        Duration `toml:"long_press"`
	MaxTapInterval   Duration `toml:"max_tap_interval"`
	MinSwipeDistance float64  `toml:"min_swipe_distance"`
	DragThreshold    float64  `toml:"drag_threshold"`
	PinchThreshold   float64  `toml:"pinch_threshold"`
}

// DefaultGestureConfig returns the standard thresholds.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		LongPress:        Duration{DefaultLongPress},
		MaxTapInterval:   Duration{DefaultMaxTapInterval},
		MinSwipeDistance: DefaultMinSwipeDistance,
		DragThreshold:    DefaultDragThreshold,
		PinchThreshold:   DefaultPinchThreshold,
	}
}

// JoystickConfig sets the travel radius and deadzone of a JoystickController.
// Deadzone is a fraction of MovementRadius in [0, 1).
type JoystickConfig struct {
	MovementRadius float64 `toml:"movement_radius"`
	Deadzone       float64 `toml:"deadzone"`
}

// DefaultJoystickConfig returns the standard joystick settings.
func DefaultJoystickConfig() JoystickConfig {
	return JoystickConfig{
		MovementRadius: DefaultMovementRadius,
		Deadzone:       DefaultDeadzone,
	}
}

// Config is the file form of every tunable in the package.
type Config struct {
	Debug    bool           `toml:"debug"`
	Gesture  GestureConfig  `toml:"gesture"`
	Joystick JoystickConfig `toml:"joystick"`
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() Config {
	return Config{
		Gesture:  DefaultGestureConfig(),
		Joystick: DefaultJoystickConfig(),
	}
}

// Validate reports every out-of-range field. Controllers tolerate invalid
// values at runtime; Validate exists so a bad file is caught at load time.
func (c Config) Validate() error {
	var result *multierror.Error
	g := c.Gesture
	if g.LongPress.Duration <= 0 {
		result = multierror.Append(result, fmt.Errorf("gesture.long_press must be positive, got %v", g.LongPress.Duration))
	}
	if g.MaxTapInterval.Duration <= 0 {
		result = multierror.Append(result, fmt.Errorf("gesture.max_tap_interval must be positive, got %v", g.MaxTapInterval.Duration))
	}
	if g.MinSwipeDistance < 0 {
		result = multierror.Append(result, fmt.Errorf("gesture.min_swipe_distance must not be negative, got %v", g.MinSwipeDistance))
	}
	if g.DragThreshold < 0 {
		result = multierror.Append(result, fmt.Errorf("gesture.drag_threshold must not be negative, got %v", g.DragThreshold))
	}
	if g.PinchThreshold < 0 {
		result = multierror.Append(result, fmt.Errorf("gesture.pinch_threshold must not be negative, got %v", g.PinchThreshold))
	}
	j := c.Joystick
	if j.MovementRadius <= 0 {
		result = multierror.Append(result, fmt.Errorf("joystick.movement_radius must be positive, got %v", j.MovementRadius))
	}
	if j.Deadzone < 0 || j.Deadzone >= 1 {
		result = multierror.Append(result, fmt.Errorf("joystick.deadzone must be in [0, 1), got %v", j.Deadzone))
	}
	return result.ErrorOrNil()
}

// DecodeConfig parses TOML text on top of DefaultConfig, so omitted keys keep
// their default values.
func DecodeConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	logger.Infof("loaded config from %s", path)
	return cfg, nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
