package tactile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	g := cfg.Gesture
	if g.LongPress.Duration != 700*ms || g.MaxTapInterval.Duration != 300*ms {
		t.Errorf("durations = %v, %v; want 700ms, 300ms", g.LongPress, g.MaxTapInterval)
	}
	if g.MinSwipeDistance != 0.1 || g.DragThreshold != 0.01 || g.PinchThreshold != 0.05 {
		t.Errorf("distances = %+v", g)
	}
}

func TestDecodeConfigPartial(t *testing.T) {
	cfg, err := DecodeConfig(`
debug = true

[gesture]
long_press = "1s"
min_swipe_distance = 0.2

[joystick]
deadzone = 0.25
`)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if cfg.Gesture.LongPress.Duration != time.Second {
		t.Errorf("LongPress = %v, want 1s", cfg.Gesture.LongPress)
	}
	if cfg.Gesture.MinSwipeDistance != 0.2 {
		t.Errorf("MinSwipeDistance = %v, want 0.2", cfg.Gesture.MinSwipeDistance)
	}
	if cfg.Gesture.MaxTapInterval.Duration != DefaultMaxTapInterval {
		t.Errorf("MaxTapInterval = %v, want default", cfg.Gesture.MaxTapInterval)
	}
	if cfg.Joystick.Deadzone != 0.25 || cfg.Joystick.MovementRadius != DefaultMovementRadius {
		t.Errorf("Joystick = %+v", cfg.Joystick)
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad duration", "[gesture]\nlong_press = \"soon\"", "decode config"},
		{"bad syntax", "[gesture", "decode config"},
		{"negative radius", "[joystick]\nmovement_radius = -1", "movement_radius"},
		{"deadzone one", "[joystick]\ndeadzone = 1.0", "deadzone"},
		{"zero tap interval", "[gesture]\nmax_tap_interval = \"0s\"", "max_tap_interval"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfig(tt.data)
			if err == nil {
				t.Fatal("DecodeConfig succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gesture.LongPress = Duration{}
	cfg.Gesture.DragThreshold = -1
	cfg.Joystick.MovementRadius = 0

	err := cfg.Validate()
	merr, ok := err.(*multierror.Error)
	if !ok {
		t.Fatalf("Validate() = %T, want *multierror.Error", err)
	}
	if len(merr.Errors) != 3 {
		t.Errorf("got %d errors, want 3: %v", len(merr.Errors), merr)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tactile.toml")
	if err := os.WriteFile(path, []byte("[gesture]\nmax_tap_interval = \"250ms\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Gesture.MaxTapInterval.Duration != 250*ms {
		t.Errorf("MaxTapInterval = %v, want 250ms", cfg.Gesture.MaxTapInterval)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadConfig of a missing file succeeded")
	}
}

func TestConfigEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := DefaultConfig().Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), `long_press = "700ms"`) {
		t.Errorf("encoded config missing duration string:\n%s", buf.String())
	}
	cfg, err := DecodeConfig(buf.String())
	if err != nil {
		t.Fatalf("DecodeConfig(encoded): %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("decoded %+v, want %+v", cfg, DefaultConfig())
	}
}
