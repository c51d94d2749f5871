package render

import "image/color"

// paletteSize is the number of mountain shades between the low and high
// fill colors.
const paletteSize = 32

// FramePainter applies paint commands to an RGBA pixel buffer. Rows in
// commands count up from the viewport bottom; the buffer is stored top-down
// as the screen expects. Mountain fill is shaded by column top height
// through a fixed palette, with out-of-range heights clamped to the end
// shades.
type FramePainter struct {
	width, height int
	buf           []byte
	sky           color.RGBA
	edge          color.RGBA
	palette       []color.RGBA
}

// NewFramePainter allocates a painter and builds the mountain shade palette
// as a linear blend from low to high.
func NewFramePainter(width, height int, sky, low, high, edge color.RGBA) *FramePainter {
	fp := &FramePainter{
		width:   width,
		height:  height,
		buf:     make([]byte, 4*width*height),
		sky:     sky,
		edge:    edge,
		palette: make([]color.RGBA, paletteSize),
	}
	for i := range fp.palette {
		fp.palette[i] = color.RGBA{
			R: blend(low.R, high.R, i),
			G: blend(low.G, high.G, i),
			B: blend(low.B, high.B, i),
			A: 255,
		}
	}
	return fp
}

func blend(a, b uint8, step int) uint8 {
	return uint8(int(a) + (int(b)-int(a))*step/(paletteSize-1))
}

// Buffer exposes the RGBA pixels for upload to the screen.
func (fp *FramePainter) Buffer() []byte { return fp.buf }

// Size returns the viewport dimensions.
func (fp *FramePainter) Size() (int, int) { return fp.width, fp.height }

// Clear floods the whole buffer with the sky color.
func (fp *FramePainter) Clear() {
	for col := 0; col < fp.width; col++ {
		fp.span(col, 0, fp.height, fp.sky)
	}
}

// Apply executes a frame's command stream against the buffer.
func (fp *FramePainter) Apply(cmds []Command) {
	for _, c := range cmds {
		switch c.Kind {
		case PaintSkyAndMountain:
			fp.span(c.Column, c.Top, fp.height, fp.sky)
			fp.span(c.Column, 0, c.Top, fp.shade(c.Top))
		case ExtendMountain:
			fp.span(c.Column, c.Old, c.Top, fp.shade(c.Top))
		case EdgeLine:
			fp.span(c.Column, c.Top, c.Top+1, fp.edge)
		}
	}
}

// shade picks the mountain fill color for a column top, clamping the scale
// input to the palette range.
func (fp *FramePainter) shade(top int) color.RGBA {
	idx := top * paletteSize / fp.height
	if idx < 0 {
		idx = 0
	}
	if idx > paletteSize-1 {
		idx = paletteSize - 1
	}
	return fp.palette[idx]
}

// span fills rows [from, to) of one column, rows counted from the viewport
// bottom. Out-of-range rows and columns are clipped.
func (fp *FramePainter) span(col, from, to int, c color.RGBA) {
	if col < 0 || col >= fp.width {
		return
	}
	if from < 0 {
		from = 0
	}
	if to > fp.height {
		to = fp.height
	}
	for y := from; y < to; y++ {
		base := ((fp.height-1-y)*fp.width + col) * 4
		fp.buf[base+0] = c.R
		fp.buf[base+1] = c.G
		fp.buf[base+2] = c.B
		fp.buf[base+3] = c.A
	}
}
