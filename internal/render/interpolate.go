package render

// InterpLaw produces the midpoint elevation and screen row for a bisection
// between two known points at the given recursion depth. Laws must be pure:
// identical inputs always yield identical outputs.
type InterpLaw func(elev1, elev2, row1, row2, depth int) (elev, row int)

// fractalDamping is the fixed extra shift applied on top of the per-level
// halving of the fractal displacement.
const fractalDamping = 3

// Linear is the exact midpoint law, no displacement.
func Linear(elev1, elev2, row1, row2, depth int) (int, int) {
	return (elev1 + elev2) / 2, (row1 + row2) / 2
}

// Fractal is the midpoint-displacement law. The displacement magnitude comes
// from the low byte of the sum of the input elevations, halved per bisection
// level and damped by a fixed shift; the sign comes from that byte's low
// bit. When the sum overflows a byte the displacement is suppressed and the
// result degrades to Linear. Jaggedness is therefore reproducible and tied
// to the elevation data, not a fresh random draw.
func Fractal(elev1, elev2, row1, row2, depth int) (int, int) {
	elev := (elev1 + elev2) / 2
	row := (row1 + row2) / 2

	sum := elev1 + elev2
	if sum > 255 {
		return elev, row
	}
	low := sum & 0xff
	mag := low >> uint(depth+fractalDamping)
	if mag == 0 {
		return elev, row
	}
	if low&1 != 0 {
		mag = -mag
	}
	return elev + mag, row + mag>>AnglePixelShift
}
