package app

import (
	"time"

	"github.com/rs/zerolog"

	"ridgerun/internal/angle"
	"ridgerun/internal/config"
	"ridgerun/internal/render"
	"ridgerun/internal/ship"
	"ridgerun/internal/terrain"
)

// Session owns one flight: the trig tables, the terrain, the ship and the
// renderer, plus the frame painter the GUI blits from. All state is confined
// to the tick goroutine; a tick runs to completion before the next is
// considered.
type Session struct {
	cfg     config.Config
	log     zerolog.Logger
	tables  *angle.Tables
	terr    *terrain.Map
	craft   *ship.Ship
	rend    *render.Renderer
	painter *render.FramePainter

	busy    bool
	dropped uint64
}

// NewSession validates the configuration, builds the core and generates the
// initial terrain.
func NewSession(cfg config.Config, log zerolog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tables := angle.NewTables()

	terr, err := terrain.New(cfg.GridSize, cfg.MaxHeight, cfg.MaxVariation, cfg.Seed)
	if err != nil {
		return nil, err
	}

	craft, err := ship.New(tables, cfg.SpaceSize(), cfg.MaxAltitude)
	if err != nil {
		return nil, err
	}
	craft.X = cfg.SpaceSize() / 2
	craft.Y = cfg.SpaceSize() / 2
	craft.Z = cfg.MaxHeight
	craft.Thrust = cfg.Thrust
	craft.RollToAngle = cfg.RollToAngle

	proj := render.NewProjector(tables, terr, cfg.ViewportWidth, cfg.Horizon)
	law := render.Linear
	if cfg.FractalRelief {
		law = render.Fractal
	}
	rend, err := render.NewRenderer(proj, terr, cfg.ViewportWidth, cfg.ViewportHeight, cfg.ViewDistance, law)
	if err != nil {
		return nil, err
	}

	painter := render.NewFramePainter(
		cfg.ViewportWidth, cfg.ViewportHeight,
		config.MustColor(cfg.SkyColor),
		config.MustColor(cfg.MountainLow),
		config.MustColor(cfg.MountainHigh),
		config.MustColor(cfg.EdgeColor),
	)

	s := &Session{
		cfg:     cfg,
		log:     log,
		tables:  tables,
		terr:    terr,
		craft:   craft,
		rend:    rend,
		painter: painter,
	}
	s.Regenerate()
	return s, nil
}

// Regenerate rebuilds the terrain in place and logs how long it took.
func (s *Session) Regenerate() {
	start := time.Now()
	s.terr.Generate()
	s.log.Info().
		Int("grid", s.terr.Size()).
		Dur("took", time.Since(start)).
		Msg("terrain generated")
}

// Tick runs one simulation step and one full render pass. A tick arriving
// while the previous one is still in flight is dropped, not queued: a lost
// frame beats torn state. Returns whether the tick ran.
func (s *Session) Tick() bool {
	if s.busy {
		s.dropped++
		if s.dropped%64 == 1 {
			s.log.Warn().Uint64("dropped", s.dropped).Msg("tick overrun, dropping frames")
		}
		return false
	}
	s.busy = true
	defer func() { s.busy = false }()

	s.craft.Tick()
	cmds := s.rend.RenderFrame(s.craft)
	s.painter.Clear()
	s.painter.Apply(cmds)
	return true
}

// Ship exposes the vehicle for input handling and observers.
func (s *Session) Ship() *ship.Ship { return s.craft }

// Terrain exposes the elevation map.
func (s *Session) Terrain() *terrain.Map { return s.terr }

// Frame returns the RGBA pixels of the last painted frame.
func (s *Session) Frame() []byte { return s.painter.Buffer() }

// Dropped reports how many ticks the reentrancy guard discarded.
func (s *Session) Dropped() uint64 { return s.dropped }

// Config returns the options the session was built with.
func (s *Session) Config() config.Config { return s.cfg }
