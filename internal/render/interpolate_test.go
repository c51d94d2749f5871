package render

import "testing"

func TestLinearMidpoint(t *testing.T) {
	elev, row := Linear(10, 20, 4, 8, 0)
	if elev != 15 || row != 6 {
		t.Fatalf("Linear gave (%d, %d), want (15, 6)", elev, row)
	}
	// Depth is irrelevant to the linear law.
	elev2, row2 := Linear(10, 20, 4, 8, 9)
	if elev2 != elev || row2 != row {
		t.Fatal("Linear depends on depth")
	}
}

func TestFractalIsDeterministic(t *testing.T) {
	for _, c := range [][5]int{
		{120, 80, 30, 50, 0},
		{120, 80, 30, 50, 1},
		{3, 4, 7, 7, 2},
		{255, 0, 10, 90, 0},
	} {
		e1, r1 := Fractal(c[0], c[1], c[2], c[3], c[4])
		e2, r2 := Fractal(c[0], c[1], c[2], c[3], c[4])
		if e1 != e2 || r1 != r2 {
			t.Fatalf("Fractal%v not deterministic: (%d,%d) vs (%d,%d)", c, e1, r1, e2, r2)
		}
	}
}

func TestFractalOverflowSuppressesDisplacement(t *testing.T) {
	// 200+80 overflows a byte: pure linear midpoint.
	elev, row := Fractal(200, 80, 10, 20, 0)
	le, lr := Linear(200, 80, 10, 20, 0)
	if elev != le || row != lr {
		t.Fatalf("overflow gave (%d, %d), want linear (%d, %d)", elev, row, le, lr)
	}
}

func TestFractalDisplacementHalvesWithDepth(t *testing.T) {
	// Sum 200: low byte even, so the displacement is positive and shrinks
	// by one shift per level on top of the fixed damping.
	base, _ := Linear(120, 80, 0, 0, 0)
	wantMag := []int{200 >> 3, 200 >> 4, 200 >> 5, 200 >> 6}
	for depth, want := range wantMag {
		elev, _ := Fractal(120, 80, 0, 0, depth)
		if got := elev - base; got != want {
			t.Fatalf("depth %d displacement %d, want %d", depth, got, want)
		}
	}
}

func TestFractalSignFromLowBit(t *testing.T) {
	// Sum 201: odd low byte flips the displacement negative.
	base, _ := Linear(121, 80, 0, 0, 0)
	elev, _ := Fractal(121, 80, 0, 0, 0)
	if got := elev - base; got != -(201 >> 3) {
		t.Fatalf("odd-sum displacement %d, want %d", got, -(201 >> 3))
	}
}
