package terrain

import "fmt"

// Each map cell spans CellSpan units of the ship's fine-grained coordinate
// space, so a map of N cells wraps at N << CellShift position units.
const (
	CellShift = 4
	CellSpan  = 1 << CellShift
)

// ChangeHandler receives a cell write as (row, col, newValue).
type ChangeHandler func(row, col, value int)

type changeObserver struct {
	handle int
	fn     ChangeHandler
}

// Map is a toroidal N*N grid of elevation samples. Coordinates wrap on both
// axes, values clamp to [0, MaxHeight], and every write notifies the change
// observers synchronously in registration order. Reads during generation may
// observe provisional values; that reentrant visibility is part of the
// contract.
type Map struct {
	n            int
	mask         int
	shift        uint
	maxHeight    int
	maxVariation int
	cells        []uint8
	rng          *RNG
	observers    []changeObserver
	nextHandle   int
}

// New allocates a zeroed map. The size must be a power of two so that
// wrapping reduces to masking; anything else fails before first use.
func New(n, maxHeight, maxVariation int, seed int64) (*Map, error) {
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("terrain: grid size %d is not a power of two", n)
	}
	if maxHeight < 1 || maxHeight > 255 {
		return nil, fmt.Errorf("terrain: max height %d outside [1, 255]", maxHeight)
	}
	if maxVariation < 1 {
		return nil, fmt.Errorf("terrain: max variation %d must be positive", maxVariation)
	}
	return &Map{
		n:            n,
		mask:         n - 1,
		shift:        uint(log2(n)),
		maxHeight:    maxHeight,
		maxVariation: maxVariation,
		cells:        make([]uint8, n*n),
		rng:          NewRNG(seed),
	}, nil
}

// Size returns the grid side length.
func (m *Map) Size() int { return m.n }

// MaxHeight returns the upper elevation bound.
func (m *Map) MaxHeight() int { return m.maxHeight }

// Get returns the elevation at (row, col), wrapping both axes.
func (m *Map) Get(row, col int) int {
	return int(m.cells[(row&m.mask)<<m.shift|(col&m.mask)])
}

// Set writes a clamped elevation at (row, col), wrapping both axes, then
// invokes the change observers with the wrapped coordinates.
func (m *Map) Set(row, col, value int) {
	if value < 0 {
		value = 0
	}
	if value > m.maxHeight {
		value = m.maxHeight
	}
	row &= m.mask
	col &= m.mask
	m.cells[row<<m.shift|col] = uint8(value)
	for _, o := range m.observers {
		o.fn(row, col, value)
	}
}

// OnChange registers a change observer and returns its removal handle.
func (m *Map) OnChange(fn ChangeHandler) int {
	m.nextHandle++
	m.observers = append(m.observers, changeObserver{handle: m.nextHandle, fn: fn})
	return m.nextHandle
}

// RemoveOnChange unregisters the observer with the given handle.
func (m *Map) RemoveOnChange(handle int) {
	for i, o := range m.observers {
		if o.handle == handle {
			m.observers = append(m.observers[:i], m.observers[i+1:]...)
			return
		}
	}
}

func log2(n int) int {
	s := 0
	for n > 1 {
		n >>= 1
		s++
	}
	return s
}
