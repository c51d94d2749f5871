package render

import (
	"ridgerun/internal/angle"
	"ridgerun/internal/ship"
	"ridgerun/internal/terrain"
)

// AnglePixelShift converts angle units to screen pixels: one pixel covers
// 1 << AnglePixelShift angle units on both axes.
const AnglePixelShift = 2

// Point is a projected terrain corner: a screen column, a screen row counted
// up from the viewport bottom, and the elevation the projection saw. Rows
// may land outside the viewport; the occlusion pass clamps at draw time.
type Point struct {
	Col  int
	Row  int
	Elev int
}

// Projector turns terrain grid coordinates into screen points for the
// current ship state. It is a pure function of (cell, ship, elevation); the
// renderer memoizes its results per frame.
type Projector struct {
	tables    *angle.Tables
	terr      *terrain.Map
	width     int
	horizon   int
	spaceMask int
}

// NewProjector builds a projector for the given viewport width and horizon
// row (in rows above the viewport bottom).
func NewProjector(tables *angle.Tables, terr *terrain.Map, width, horizon int) *Projector {
	return &Projector{
		tables:    tables,
		terr:      terr,
		width:     width,
		horizon:   horizon,
		spaceMask: terr.Size()<<terrain.CellShift - 1,
	}
}

// Project computes the screen point for the corner of cell (cellCol,
// cellRow) as seen from the ship. The azimuth relative to the heading sets
// the column; the altitude angle is derived by feeding the (octagonal
// distance, elevation delta) pair through the same inverse-tangent lookup
// used for azimuths. That vertical angle is not a real arctangent of the
// slope — the mixed units are deliberate and the tuned look depends on them.
func (p *Projector) Project(s *ship.Ship, cellCol, cellRow int) Point {
	dx := p.wrapDelta(cellCol<<terrain.CellShift - s.X)
	dy := p.wrapDelta(cellRow<<terrain.CellShift - s.Y)

	azimuth := angle.Signed(p.tables.FromCoordinates(dx, dy) - s.Heading)
	col := p.width/2 - azimuth>>AnglePixelShift

	elev := p.terr.Get(cellRow, cellCol)
	alt := angle.Signed(p.tables.FromCoordinates(angle.Distance(dx, dy), elev-s.Z))
	row := p.horizon + alt>>AnglePixelShift

	return Point{Col: col, Row: row, Elev: elev}
}

// wrapDelta reduces a toroidal displacement to its signed shortest form.
func (p *Projector) wrapDelta(d int) int {
	d &= p.spaceMask
	if d > (p.spaceMask+1)/2 {
		d -= p.spaceMask + 1
	}
	return d
}
