package render

import (
	"fmt"

	"ridgerun/internal/ship"
	"ridgerun/internal/terrain"
)

type cellKey struct {
	col, row int
}

// Renderer turns the terrain around the ship into a stream of column-paint
// commands. Cells are projected ring by ring outward from the ship's own
// cell; the skyline between projected corners is approximated by recursive
// midpoint interpolation instead of per-pixel ray casting, and columns are
// composited with nearest-wins occlusion. The memo and occlusion buffer are
// frame-scoped: nothing carries over between frames.
type Renderer struct {
	proj         *Projector
	law          InterpLaw
	width        int
	height       int
	viewDistance int

	occ  []int
	memo map[cellKey]Point
	cmds []Command
}

// NewRenderer validates the view geometry and allocates the frame buffers.
// The view distance must leave the toroidal wrap unambiguous: a ring may
// never reach halfway around the map.
func NewRenderer(proj *Projector, terr *terrain.Map, width, height, viewDistance int, law InterpLaw) (*Renderer, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("render: viewport %dx%d too small", width, height)
	}
	if viewDistance < 2 {
		return nil, fmt.Errorf("render: view distance %d too short", viewDistance)
	}
	if viewDistance >= terr.Size()/2 {
		return nil, fmt.Errorf("render: view distance %d reaches past the wrap of a %d-cell map", viewDistance, terr.Size())
	}
	if law == nil {
		law = Linear
	}
	return &Renderer{
		proj:         proj,
		law:          law,
		width:        width,
		height:       height,
		viewDistance: viewDistance,
		occ:          make([]int, width),
	}, nil
}

// RenderFrame produces the paint commands for one frame from the current
// ship state. The returned slice is reused on the next call.
func (r *Renderer) RenderFrame(s *ship.Ship) []Command {
	for i := range r.occ {
		r.occ[i] = -1
	}
	r.memo = make(map[cellKey]Point, 4*r.viewDistance*r.viewDistance)
	r.cmds = r.cmds[:0]

	shipCol := s.X >> terrain.CellShift
	shipRow := s.Y >> terrain.CellShift
	r.point(s, shipCol, shipRow)

	for d := 1; d < r.viewDistance; d++ {
		r.renderRing(s, shipCol, shipRow, d)
	}
	return r.cmds
}

// renderRing projects every cell on the square ring at Chebyshev distance d,
// interpolates each against its inward neighbor (already projected on ring
// d-1) and its predecessor along the perimeter, then composites the ring
// cells' own columns.
func (r *Renderer) renderRing(s *ship.Ship, shipCol, shipRow, d int) {
	offsets := ringOffsets(d)
	points := make([]Point, len(offsets))
	for i, off := range offsets {
		points[i] = r.point(s, shipCol+off.col, shipRow+off.row)
	}

	for i, off := range offsets {
		ic, ir := off.col, off.row
		if ic == d || ic == -d {
			ic -= sign(ic)
		}
		if ir == d || ir == -d {
			ir -= sign(ir)
		}
		inner := r.point(s, shipCol+ic, shipRow+ir)
		r.bisect(inner, points[i], 0)

		prev := points[(i+len(points)-1)%len(points)]
		r.bisect(prev, points[i], 0)
	}

	for _, pt := range points {
		r.drawColumn(pt.Col, pt.Row)
	}
}

// point projects a cell through the per-frame memo.
func (r *Renderer) point(s *ship.Ship, cellCol, cellRow int) Point {
	key := cellKey{col: cellCol, row: cellRow}
	if pt, ok := r.memo[key]; ok {
		return pt
	}
	pt := r.proj.Project(s, cellCol, cellRow)
	r.memo[key] = pt
	return pt
}

// bisect recursively fills the screen columns between two known points,
// drawing each midpoint column as it is produced. Recursion stops when the
// midpoint column coincides with an endpoint (adjacent columns) or when the
// whole segment lies off the viewport on one side, so the off-screen half of
// a straddling segment is pruned rather than bisected into clipped no-ops.
func (r *Renderer) bisect(a, b Point, depth int) {
	if (a.Col < 0 && b.Col < 0) || (a.Col >= r.width && b.Col >= r.width) {
		return
	}
	mid := (a.Col + b.Col) / 2
	if mid == a.Col || mid == b.Col {
		return
	}
	elev, row := r.law(a.Elev, b.Elev, a.Row, b.Row, depth)
	r.drawColumn(mid, row)

	m := Point{Col: mid, Row: row, Elev: elev}
	r.bisect(a, m, depth+1)
	r.bisect(m, b, depth+1)
}

// drawColumn composites a candidate mountain top into one screen column.
// Fresh columns get sky and mountain; taller candidates extend the mountain
// band and leave a shadow line at the old top; anything at or below the
// recorded top is occluded by nearer terrain already drawn.
func (r *Renderer) drawColumn(col, top int) {
	if col < 0 || col >= r.width {
		return
	}
	if top < 0 {
		top = 0
	}
	if top > r.height {
		top = r.height
	}
	prev := r.occ[col]
	switch {
	case prev < 0:
		r.cmds = append(r.cmds, Command{Kind: PaintSkyAndMountain, Column: col, Top: top})
		r.occ[col] = top
	case top > prev:
		r.cmds = append(r.cmds, Command{Kind: ExtendMountain, Column: col, Old: prev, Top: top})
		r.cmds = append(r.cmds, Command{Kind: EdgeLine, Column: col, Top: prev})
		r.occ[col] = top
	}
}

// ringOffsets lists the cell offsets of the square ring at Chebyshev
// distance d, in a contiguous clockwise walk starting at the north-west
// corner, so consecutive entries are perimeter neighbors.
func ringOffsets(d int) []cellKey {
	offs := make([]cellKey, 0, 8*d)
	for col := -d; col < d; col++ {
		offs = append(offs, cellKey{col: col, row: -d})
	}
	for row := -d; row < d; row++ {
		offs = append(offs, cellKey{col: d, row: row})
	}
	for col := d; col > -d; col-- {
		offs = append(offs, cellKey{col: col, row: d})
	}
	for row := d; row > -d; row-- {
		offs = append(offs, cellKey{col: -d, row: row})
	}
	return offs
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
