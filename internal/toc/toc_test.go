// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mddoc/pkg/types"
)

func sampleBlocks() []types.Block {
	return []types.Block{
		types.Title("Doc"),
		types.Heading(2, "A"),
		types.Paragraph("text"),
		types.Heading(3, "B"),
		types.Code("", "## not a heading"),
		types.Heading(2, "C"),
	}
}

func TestEntriesPreserveOrder(t *testing.T) {
	assert.Equal(t, []types.TocEntry{
		{Level: 2, Text: "A"},
		{Level: 3, Text: "B"},
		{Level: 2, Text: "C"},
	}, Entries(sampleBlocks()))
}

func TestEntriesKeepDuplicates(t *testing.T) {
	blocks := []types.Block{types.Heading(2, "Setup"), types.Heading(2, "Setup")}
	assert.Len(t, Entries(blocks), 2)
}

func TestManualIndentMapping(t *testing.T) {
	lines := Manual(Entries(sampleBlocks()))
	require.Len(t, lines, 3)

	wantText := []string{"A", "B", "C"}
	wantIndent := []int{1, 2, 1}
	for i, l := range lines {
		assert.Equal(t, wantText[i], l.Entry.Text)
		assert.Equal(t, wantIndent[i], l.Indent)
		assert.Equal(t, strings.Repeat(".", FillLength), l.Leader)
		assert.Equal(t, PageMarker, l.Marker)
	}
	assert.Equal(t, 0.25, lines[0].IndentInches())
	assert.Equal(t, 0.5, lines[1].IndentInches())
	assert.True(t, lines[0].Bold)
	assert.False(t, lines[1].Bold)
	assert.Equal(t, 12.0, lines[0].SizePt)
	assert.Equal(t, 11.0, lines[1].SizePt)
}

func TestLineString(t *testing.T) {
	l := Manual([]types.TocEntry{{Level: 3, Text: "Install"}})[0]
	assert.Equal(t, "    Install"+strings.Repeat(".", 50)+" X", l.String())
}

func TestBuild(t *testing.T) {
	tests := []struct {
		mode        types.TOCMode
		wantEnabled bool
		wantLines   int
		wantInstr   string
	}{
		{mode: "", wantEnabled: false},
		{mode: types.TOCNone, wantEnabled: false},
		{mode: types.TOCField, wantEnabled: true, wantInstr: FieldInstruction},
		{mode: types.TOCManual, wantEnabled: true, wantLines: 3},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			table := Build(sampleBlocks(), tt.mode)
			assert.Equal(t, tt.wantEnabled, table.Enabled())
			assert.Len(t, table.Lines, tt.wantLines)
			assert.Equal(t, tt.wantInstr, table.Instruction)
			assert.Len(t, table.Entries, 3)
		})
	}
}
