package angle

import "math"

// Angles are plain integers measured in 1/4096ths of a full turn, always
// normalized to [0, FullCircle). Trig values are Q12 fixed point.
const (
	FullCircle    = 4096
	HalfCircle    = FullCircle / 2
	QuarterCircle = FullCircle / 4

	FracBits = 12
	One      = 1 << FracBits
)

// Tables holds the precomputed fixed-point trig tables. Built once at
// startup and never written afterwards; the tangent table covers a single
// quadrant and is strictly increasing, which the inverse lookup relies on.
type Tables struct {
	sin [FullCircle]int32
	cos [FullCircle]int32
	tan [QuarterCircle]int32
}

// NewTables computes the sine, cosine and tangent tables. This is the only
// place floating point is used; every later query is a table read.
func NewTables() *Tables {
	t := &Tables{}
	for i := 0; i < FullCircle; i++ {
		rad := float64(i) * 2 * math.Pi / FullCircle
		t.sin[i] = int32(math.Round(math.Sin(rad) * One))
		t.cos[i] = int32(math.Round(math.Cos(rad) * One))
	}
	for i := 0; i < QuarterCircle; i++ {
		rad := float64(i) * 2 * math.Pi / FullCircle
		t.tan[i] = int32(math.Round(math.Tan(rad) * One))
	}
	return t
}

// Norm wraps an angle into [0, FullCircle).
func Norm(a int) int {
	return (a%FullCircle + FullCircle) % FullCircle
}

// Signed wraps an angle into (-HalfCircle, HalfCircle].
func Signed(a int) int {
	a = Norm(a)
	if a > HalfCircle {
		a -= FullCircle
	}
	return a
}

// Sine returns sin(a) in Q12.
func (t *Tables) Sine(a int) int32 { return t.sin[Norm(a)] }

// Cosine returns cos(a) in Q12.
func (t *Tables) Cosine(a int) int32 { return t.cos[Norm(a)] }

// Tangent returns tan(a) in Q12. The second result is false exactly at the
// quarter- and three-quarter-circle asymptotes, where the value is undefined.
func (t *Tables) Tangent(a int) (int32, bool) {
	m := Norm(a) % HalfCircle
	if m == QuarterCircle {
		return 0, false
	}
	if m < QuarterCircle {
		return t.tan[m], true
	}
	return -t.tan[HalfCircle-m], true
}

// MaxTangent reports the largest slope the tangent table can represent.
func (t *Tables) MaxTangent() int32 { return t.tan[QuarterCircle-1] }

// FromCoordinates maps a displacement to its angle: 0 points along +x, a
// quarter circle along +y. A zero dx resolves by the sign of dy, and slopes
// beyond the table's range clamp to the same axis-aligned angle. Exactly one
// integer division is performed per call.
func (t *Tables) FromCoordinates(dx, dy int) int {
	if dx == 0 {
		switch {
		case dy > 0:
			return QuarterCircle
		case dy < 0:
			return 3 * QuarterCircle
		}
		return 0
	}
	adx, ady := dx, dy
	if adx < 0 {
		adx = -adx
	}
	if ady < 0 {
		ady = -ady
	}
	ratio := (int64(ady) << FracBits) / int64(adx)

	base := QuarterCircle
	if ratio <= int64(t.MaxTangent()) {
		base = findIndexOf(t.tan[:], int32(ratio))
	}

	switch {
	case dx > 0 && dy >= 0:
		return base
	case dx < 0 && dy >= 0:
		return HalfCircle - base
	case dx < 0:
		return HalfCircle + base
	default:
		return Norm(FullCircle - base)
	}
}

// findIndexOf binary-searches a non-decreasing table for the entry closest
// below the query. When the bounds converge to an adjacent pair, the higher
// index wins if its value is <= the query, otherwise the lower one.
func findIndexOf(table []int32, v int32) int {
	lo, hi := 0, len(table)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if table[mid] < v {
			lo = mid
		} else {
			hi = mid
		}
	}
	if table[hi] <= v {
		return hi
	}
	return lo
}

// Distance approximates the Euclidean length of (dx, dy) with an octagonal
// shift-and-add blend of the larger and smaller axis deltas. No square root,
// no multiplication; the result stays within a few percent of exact.
func Distance(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	a, b := dx, dy
	if a < b {
		a, b = b, a
	}
	// ~0.953*a + ~0.406*b
	return a - (a >> 4) + (a >> 5) - (a >> 6) + (b >> 2) + (b >> 3) + (b >> 4) - (b >> 5)
}
