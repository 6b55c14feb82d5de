package editor

// Layout constants for the two-column row layout.
const (
	LeftColumn       = 20
	RightColumn      = 200
	GlyphColumn      = 240
	TopMargin        = 10
	DefaultRowHeight = 25

	LabelWidth   = 200
	ControlWidth = 170
	FieldWidth   = 178
	RowControlH  = 20
)

// Rect is a rectangle in surface units.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Cursor tracks the vertical stacking position across one pass.
//
// Index is the widget slot: every widget call takes exactly one and slots
// strictly increase within a pass. Line is the visual row the slot is drawn
// on; SameLine lets the next widget reuse the previous line so a label and
// its control (or the coordinates of a vector) share a row.
type Cursor struct {
	Index     int
	Line      int
	RowHeight float64

	sameLine bool
	started  bool
}

// Advance returns the current slot and moves the cursor forward.
func (c *Cursor) Advance() int {
	idx := c.Index
	if c.started && !c.sameLine {
		c.Line++
	}
	c.started = true
	c.sameLine = false
	c.Index++
	return idx
}

// SameLine places the next widget on the line of the previous one.
func (c *Cursor) SameLine() {
	if c.started {
		c.sameLine = true
	}
}

// Reset rewinds the cursor for a new pass.
func (c *Cursor) Reset() {
	c.Index = 0
	c.Line = 0
	c.sameLine = false
	c.started = false
}

// Lines reports how many visual lines have been used so far.
func (c *Cursor) Lines() int {
	if !c.started {
		return 0
	}
	return c.Line + 1
}

func (c *Cursor) rowHeight() float64 {
	if c.RowHeight <= 0 {
		return DefaultRowHeight
	}
	return c.RowHeight
}

// RowRect is the left-column rectangle of a line.
func (c *Cursor) RowRect(line int, width, height float64) Rect {
	return c.RectAt(LeftColumn, line, width, height)
}

// PairedRect is the right-column rectangle of a line, for controls paired
// with a label.
func (c *Cursor) PairedRect(line int, width, height float64) Rect {
	return c.RectAt(RightColumn, line, width, height)
}

// RectAt places a rectangle at an explicit column.
func (c *Cursor) RectAt(x float64, line int, width, height float64) Rect {
	return Rect{
		X:      x,
		Y:      float64(line)*c.rowHeight() + TopMargin,
		Width:  width,
		Height: height,
	}
}
