package ship

import (
	"fmt"

	"ridgerun/internal/angle"
)

// MoveHandler receives the ship after each completed integration step.
type MoveHandler func(s *Ship)

type moveObserver struct {
	handle int
	fn     MoveHandler
}

// Ship is the moving viewpoint. X and Y live in the fine-grained wrapped
// coordinate space (terrain.CellSpan units per map cell), Z in elevation
// units, and heading, pitch and roll are angle units. Thrust is the speed in
// position units per tick. All fields are the externally observable state;
// only Tick mutates them.
type Ship struct {
	X, Y, Z int

	Heading int
	Pitch   int
	Roll    int

	Thrust      int
	RollToAngle int

	tables      *angle.Tables
	spaceMask   int
	maxAltitude int
	observers   []moveObserver
	nextHandle  int
}

// New returns a ship confined to a wrapped coordinate space of the given
// size, which must be a power of two, with altitude clamped to
// [0, maxAltitude].
func New(tables *angle.Tables, spaceSize, maxAltitude int) (*Ship, error) {
	if spaceSize < 2 || spaceSize&(spaceSize-1) != 0 {
		return nil, fmt.Errorf("ship: coordinate space %d is not a power of two", spaceSize)
	}
	if maxAltitude < 1 {
		return nil, fmt.Errorf("ship: max altitude %d must be positive", maxAltitude)
	}
	return &Ship{
		tables:      tables,
		spaceMask:   spaceSize - 1,
		maxAltitude: maxAltitude,
		RollToAngle: 1,
	}, nil
}

// MaxAltitude returns the altitude ceiling.
func (s *Ship) MaxAltitude() int { return s.maxAltitude }

// Tick advances the ship by one simulated step: roll turns the heading,
// thrust is projected through pitch and heading with two table lookups and
// shifts, position wraps, altitude clamps. There is no terrain collision;
// flying into a mountain is the pilot's problem. Move observers fire
// synchronously after the state settles.
func (s *Ship) Tick() {
	s.Heading = angle.Norm(s.Heading + angle.Signed(s.Roll)*s.RollToAngle)

	level := (s.Thrust * int(s.tables.Cosine(s.Pitch))) >> angle.FracBits
	s.X = (s.X + (level*int(s.tables.Cosine(s.Heading)))>>angle.FracBits) & s.spaceMask
	s.Y = (s.Y + (level*int(s.tables.Sine(s.Heading)))>>angle.FracBits) & s.spaceMask

	s.Z += (s.Thrust * int(s.tables.Sine(s.Pitch))) >> angle.FracBits
	if s.Z < 0 {
		s.Z = 0
	}
	if s.Z > s.maxAltitude {
		s.Z = s.maxAltitude
	}

	for _, o := range s.observers {
		o.fn(s)
	}
}

// OnMove registers a move observer and returns its removal handle.
func (s *Ship) OnMove(fn MoveHandler) int {
	s.nextHandle++
	s.observers = append(s.observers, moveObserver{handle: s.nextHandle, fn: fn})
	return s.nextHandle
}

// RemoveOnMove unregisters the observer with the given handle.
func (s *Ship) RemoveOnMove(handle int) {
	for i, o := range s.observers {
		if o.handle == handle {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}
