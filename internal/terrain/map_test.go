package terrain

import "testing"

func TestNewRejectsBadSizes(t *testing.T) {
	for _, n := range []int{0, 1, 3, 12, 100} {
		if _, err := New(n, 255, 2, 1); err == nil {
			t.Fatalf("New accepted grid size %d", n)
		}
	}
	if _, err := New(64, 255, 2, 1); err != nil {
		t.Fatalf("New rejected a valid map: %v", err)
	}
}

func TestGetSetWrap(t *testing.T) {
	m, err := New(16, 255, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	m.Set(3, 5, 42)
	cases := [][2]int{{3, 5}, {3 + 16, 5 + 16}, {3 - 16, 5 - 16}, {3 + 32, 5}, {3, 5 - 48}}
	for _, c := range cases {
		if got := m.Get(c[0], c[1]); got != 42 {
			t.Fatalf("Get(%d, %d) = %d, want 42", c[0], c[1], got)
		}
	}
	m.Set(15+16, 0, 7)
	if got := m.Get(15, 0); got != 7 {
		t.Fatalf("wrapped Set did not land on (15, 0): got %d", got)
	}
}

func TestSetClamps(t *testing.T) {
	m, err := New(16, 200, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	m.Set(0, 0, -5)
	if got := m.Get(0, 0); got != 0 {
		t.Fatalf("negative write gave %d, want 0", got)
	}
	m.Set(0, 0, 999)
	if got := m.Get(0, 0); got != 200 {
		t.Fatalf("oversized write gave %d, want 200", got)
	}
}

func TestChangeObservers(t *testing.T) {
	m, err := New(16, 255, 2, 1)
	if err != nil {
		t.Fatal(err)
	}

	var order []int
	h1 := m.OnChange(func(row, col, value int) { order = append(order, 1) })
	h2 := m.OnChange(func(row, col, value int) { order = append(order, 2) })

	var gotRow, gotCol, gotValue int
	h3 := m.OnChange(func(row, col, value int) { gotRow, gotCol, gotValue = row, col, value })

	m.Set(2+16, 9, 77)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("observers fired out of registration order: %v", order)
	}
	if gotRow != 2 || gotCol != 9 || gotValue != 77 {
		t.Fatalf("observer saw (%d, %d, %d), want wrapped (2, 9, 77)", gotRow, gotCol, gotValue)
	}

	m.RemoveOnChange(h1)
	order = order[:0]
	m.Set(0, 0, 1)
	if len(order) != 1 || order[0] != 2 {
		t.Fatalf("after removal observers fired as %v", order)
	}

	m.RemoveOnChange(h2)
	m.RemoveOnChange(h3)
	m.RemoveOnChange(h1) // double remove is a no-op
	order = order[:0]
	m.Set(0, 0, 2)
	if len(order) != 0 {
		t.Fatalf("removed observers still fired: %v", order)
	}
}
