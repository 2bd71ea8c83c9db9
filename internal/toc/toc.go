// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toc builds a table of contents from assembled heading blocks.
// It never looks at source text. Manual tables use placeholder page markers;
// real page numbers are left to the field mode and the host application.
package toc

import (
	"strings"

	"github.com/pdiddy/mddoc/pkg/types"
)

// FieldInstruction is the host-application field code for a table of
// contents over heading levels 1-3, with hyperlinks, hidden page numbers in
// web view, and outline levels taken from paragraph styles.
const FieldInstruction = `TOC \o "1-3" \h \z \u`

const (
	// IndentUnitInches is the left indent of one TOC level.
	IndentUnitInches = 0.25
	// FillChar and FillLength make the leader between entry text and marker.
	FillChar   = "."
	FillLength = 50
	// PageMarker stands in for a page number in manual tables.
	PageMarker = "X"
)

// Line is one rendered row of a manual table of contents.
type Line struct {
	Entry types.TocEntry
	// Indent is the number of indent units (1 for H2, 2 for H3).
	Indent int
	Leader string
	Marker string
	Bold   bool
	SizePt float64
}

// IndentInches returns the left indent of the line.
func (l Line) IndentInches() float64 {
	return float64(l.Indent) * IndentUnitInches
}

// String renders the line as plain text: indent, entry, leader, marker.
func (l Line) String() string {
	return strings.Repeat("  ", l.Indent) + l.Entry.Text + l.Leader + " " + l.Marker
}

// lineStyle holds the per-level manual entry styling.
type lineStyle struct {
	indent int
	bold   bool
	sizePt float64
}

var lineStyles = map[int]lineStyle{
	2: {indent: 1, bold: true, sizePt: 12},
	3: {indent: 2, bold: false, sizePt: 11},
}

// Entries returns one entry per heading block, in order, without
// deduplication.
func Entries(blocks []types.Block) []types.TocEntry {
	var entries []types.TocEntry
	for _, b := range blocks {
		if b.Kind != types.BlockHeading {
			continue
		}
		entries = append(entries, types.TocEntry{Level: b.Level, Text: b.Text})
	}
	return entries
}

// Manual renders entries as manual table lines.
func Manual(entries []types.TocEntry) []Line {
	leader := strings.Repeat(FillChar, FillLength)
	lines := make([]Line, 0, len(entries))
	for _, e := range entries {
		st, ok := lineStyles[e.Level]
		if !ok {
			st = lineStyles[3]
		}
		lines = append(lines, Line{
			Entry:  e,
			Indent: st.indent,
			Leader: leader,
			Marker: PageMarker,
			Bold:   st.bold,
			SizePt: st.sizePt,
		})
	}
	return lines
}

// Table is the table of contents for one document in one mode.
type Table struct {
	Mode    types.TOCMode
	Entries []types.TocEntry
	// Lines is set in manual mode.
	Lines []Line
	// Instruction is set in field mode.
	Instruction string
}

// Build returns the table of contents for blocks. An empty mode is treated
// as none.
func Build(blocks []types.Block, mode types.TOCMode) Table {
	if mode == "" {
		mode = types.TOCNone
	}
	t := Table{Mode: mode, Entries: Entries(blocks)}
	switch mode {
	case types.TOCField:
		t.Instruction = FieldInstruction
	case types.TOCManual:
		t.Lines = Manual(t.Entries)
	}
	return t
}

// Enabled reports whether the table produces any output.
func (t Table) Enabled() bool {
	return t.Mode == types.TOCField || t.Mode == types.TOCManual
}
