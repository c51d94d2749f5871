package render

// CommandKind discriminates the column-paint commands the renderer emits.
type CommandKind uint8

const (
	// PaintSkyAndMountain fills a fresh column: sky above Top, mountain below.
	PaintSkyAndMountain CommandKind = iota
	// ExtendMountain fills only the newly exposed band (Old, Top] of a column.
	ExtendMountain
	// EdgeLine draws the one-pixel shadow line at a former column top.
	EdgeLine
)

// Command is one column-paint instruction. Heights are screen rows counted
// up from the viewport bottom. The pixel sink only ever needs to fill a
// vertical span of one column with one color.
type Command struct {
	Kind   CommandKind
	Column int
	Old    int
	Top    int
}
