// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markup

// Line is one classified source line.
type Line struct {
	// Number is the 1-based position in the source.
	Number int
	Kind   LineKind
	// Text is the block content of the line (see content).
	Text string
}

// Cursor walks a line slice, classifying each line and tracking whether it
// is inside a fenced code block. A Cursor is not safe for concurrent use;
// create one per document.
type Cursor struct {
	lines  []string
	pos    int
	inCode bool
}

// NewCursor returns a cursor positioned before the first line.
func NewCursor(lines []string) *Cursor {
	return &Cursor{lines: lines}
}

// Next classifies and returns the next line. It reports false at end of
// input. Fence delimiters toggle the code-block state.
func (c *Cursor) Next() (Line, bool) {
	if c.pos >= len(c.lines) {
		return Line{}, false
	}
	raw := c.lines[c.pos]
	c.pos++

	kind := Classify(raw, c.inCode)
	if kind == KindFenceDelimiter {
		c.inCode = !c.inCode
	}
	return Line{Number: c.pos, Kind: kind, Text: content(raw, kind)}, true
}

// Peek returns the next line without consuming it.
func (c *Cursor) Peek() (Line, bool) {
	if c.pos >= len(c.lines) {
		return Line{}, false
	}
	raw := c.lines[c.pos]
	kind := Classify(raw, c.inCode)
	return Line{Number: c.pos + 1, Kind: kind, Text: content(raw, kind)}, true
}

// InCodeBlock reports whether the cursor is between an opening and a closing
// fence delimiter.
func (c *Cursor) InCodeBlock() bool { return c.inCode }
