package terrain

// Generate fills the map with diamond-square fractal terrain. The origin is
// seeded with a random elevation, then each subdivision level sets square
// centers from their four corners and edge midpoints from their four
// neighbors, perturbed by up to ±maxVariation*size and clamped by Set. The
// perturbation shrinks with the subdivision size, so the roughness scale is
// independent of the grid resolution. Every write goes through Set and fans
// out to the change observers.
func (m *Map) Generate() {
	m.Set(0, 0, m.rng.IntN(m.maxHeight+1))
	m.subdivide(m.n)
}

func (m *Map) subdivide(size int) {
	if size <= 1 {
		return
	}
	half := size / 2

	// Diamond step: centers of all squares at this scale.
	for row := half; row < m.n; row += size {
		for col := half; col < m.n; col += size {
			sum := m.Get(row-half, col-half) +
				m.Get(row-half, col+half) +
				m.Get(row+half, col-half) +
				m.Get(row+half, col+half)
			m.Set(row, col, sum/4+m.rng.Spread(m.maxVariation*size))
		}
	}

	// Square step: edge midpoints, averaged from the four cells around them.
	// The toroidal wrap in Get means no edge needs special casing.
	for row := 0; row < m.n; row += half {
		start := half
		if row%size == half {
			start = 0
		}
		for col := start; col < m.n; col += size {
			sum := m.Get(row-half, col) +
				m.Get(row+half, col) +
				m.Get(row, col-half) +
				m.Get(row, col+half)
			m.Set(row, col, sum/4+m.rng.Spread(m.maxVariation*size))
		}
	}

	m.subdivide(half)
}

// FillSlopeX initializes the map as a deterministic west-to-east ramp from 0
// to MaxHeight. Same write/notify contract as Generate, no randomness.
func (m *Map) FillSlopeX() {
	for row := 0; row < m.n; row++ {
		for col := 0; col < m.n; col++ {
			m.Set(row, col, col*m.maxHeight/(m.n-1))
		}
	}
}

// FillSlopeY initializes the map as a deterministic north-to-south ramp.
func (m *Map) FillSlopeY() {
	for row := 0; row < m.n; row++ {
		for col := 0; col < m.n; col++ {
			m.Set(row, col, row*m.maxHeight/(m.n-1))
		}
	}
}

// Fill sets every cell to the same elevation. Useful as a flat baseline.
func (m *Map) Fill(value int) {
	for row := 0; row < m.n; row++ {
		for col := 0; col < m.n; col++ {
			m.Set(row, col, value)
		}
	}
}
