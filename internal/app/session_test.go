package app

import (
	"testing"

	"github.com/rs/zerolog"

	"ridgerun/internal/config"
	"ridgerun/internal/ship"
)

func testConfig() config.Config {
	return config.Config{
		LogLevel:       "disabled",
		GridSize:       32,
		MaxHeight:      200,
		MaxVariation:   2,
		Seed:           11,
		ViewDistance:   8,
		ViewportWidth:  64,
		ViewportHeight: 48,
		Horizon:        24,
		MaxAltitude:    400,
		Thrust:         3,
		RollToAngle:    1,
		TPS:            30,
		Scale:          2,
		SkyColor:       "#87b8e0",
		MountainLow:    "#2e5a32",
		MountainHigh:   "#d8d8e8",
		EdgeColor:      "#1a1a28",
		FractalRelief:  true,
	}
}

func TestNewSessionValidatesConfig(t *testing.T) {
	cfg := testConfig()
	cfg.GridSize = 100
	if _, err := NewSession(cfg, zerolog.Nop()); err == nil {
		t.Fatal("session accepted an invalid configuration")
	}
}

func TestSessionTick(t *testing.T) {
	s, err := NewSession(testConfig(), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	if len(s.Frame()) != 64*48*4 {
		t.Fatalf("frame buffer is %d bytes, want %d", len(s.Frame()), 64*48*4)
	}

	// Deterministic scene: a rising slope ahead of a low-flying ship.
	s.Terrain().FillSlopeX()
	s.Ship().Z = 0

	x := s.Ship().X
	if !s.Tick() {
		t.Fatal("tick was dropped with nothing in flight")
	}
	if s.Ship().X == x {
		t.Fatal("tick did not move the ship")
	}
	if s.Dropped() != 0 {
		t.Fatalf("%d ticks dropped", s.Dropped())
	}

	// A frame must paint something: at least one non-sky pixel.
	sky := config.MustColor(testConfig().SkyColor)
	buf := s.Frame()
	painted := false
	for i := 0; i < len(buf); i += 4 {
		if buf[i] != sky.R || buf[i+1] != sky.G || buf[i+2] != sky.B {
			painted = true
			break
		}
	}
	if !painted {
		t.Fatal("rendered frame is pure sky")
	}
}

func TestSessionDropsReentrantTicks(t *testing.T) {
	s, err := NewSession(testConfig(), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	// A tick requested while one is in flight must be discarded, not
	// queued. A move observer fires mid-tick, so it is the natural probe.
	s.Ship().OnMove(func(_ *ship.Ship) {
		if s.Tick() {
			t.Error("reentrant tick ran instead of being dropped")
		}
	})

	if !s.Tick() {
		t.Fatal("outer tick was dropped")
	}
	if s.Dropped() != 1 {
		t.Fatalf("dropped counter = %d, want 1", s.Dropped())
	}
}
