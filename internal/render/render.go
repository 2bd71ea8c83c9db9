// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render lays out assembled blocks on a document Builder.
// The Builder is the boundary to a concrete format (docx, pdf); Render
// decides what goes where and with which fixed styling.
package render

import (
	"strings"

	"github.com/pdiddy/mddoc/internal/toc"
	"github.com/pdiddy/mddoc/pkg/types"
)

// Builder receives layout calls in document order. Implementations
// accumulate the document in memory.
type Builder interface {
	// SetMargins sets all four page margins.
	SetMargins(inches float64)
	AddTitle(text string)
	AddSubtitle(text string)
	AddHeading(text string, level int, sizePt float64, color types.RGB)
	AddBulletParagraph(text string)
	AddParagraph(text string)
	// AddCodeParagraph adds one paragraph holding newline-separated code.
	// An empty background means no shading.
	AddCodeParagraph(text, fontFamily string, sizePt float64, background string)
	AddPageBreak()
	AddBlankParagraph()
	AddTOCHeading(text string)
	AddTOCField(instruction string)
	AddTOCLine(line toc.Line)
}

// HeadingStyle is the fixed styling of one heading level.
type HeadingStyle struct {
	SizePt float64
	Color  types.RGB
}

// headingStyles is keyed by heading level.
var headingStyles = map[int]HeadingStyle{
	2: {SizePt: 16, Color: types.RGB{B: 128}},
	3: {SizePt: 14, Color: types.RGB{B: 100}},
}

// StyleForLevel returns the styling for a heading level. Levels other than
// 2 and 3 get the level-3 style.
func StyleForLevel(level int) HeadingStyle {
	if st, ok := headingStyles[level]; ok {
		return st
	}
	return headingStyles[3]
}

const (
	// CodeFont and CodeSizePt apply to every code block.
	CodeFont   = "Courier New"
	CodeSizePt = 9.0
)

// Render lays out blocks on b according to opts: margins, the title, an
// optional cover page, an optional table of contents, then the remaining
// blocks in source order. meta fills cover lines that opts leaves empty.
func Render(b Builder, blocks []types.Block, opts types.RenderOptions, meta types.DocumentMeta) {
	b.SetMargins(opts.MarginInches)

	for _, blk := range blocks {
		if blk.Kind == types.BlockTitle {
			b.AddTitle(blk.Text)
			break
		}
	}

	if opts.IncludeCoverPage {
		renderCover(b, opts, meta)
	}

	table := toc.Build(blocks, opts.TOC)
	if table.Enabled() {
		renderTOC(b, table, opts)
	}

	for _, blk := range blocks {
		renderBlock(b, blk, opts)
	}
}

func renderCover(b Builder, opts types.RenderOptions, meta types.DocumentMeta) {
	subtitle := firstNonEmpty(opts.CoverSubtitle, meta.Subtitle)
	date := firstNonEmpty(opts.CoverDate, meta.Date)

	b.AddBlankParagraph()
	if subtitle != "" {
		b.AddSubtitle(subtitle)
	}
	if date != "" {
		b.AddSubtitle(date)
	}
	if meta.Author != "" {
		b.AddSubtitle(meta.Author)
	}
	b.AddBlankParagraph()
	b.AddPageBreak()
}

func renderTOC(b Builder, table toc.Table, opts types.RenderOptions) {
	b.AddTOCHeading(firstNonEmpty(opts.TOCTitle, types.DefaultTOCTitle))
	switch table.Mode {
	case types.TOCField:
		b.AddTOCField(table.Instruction)
	case types.TOCManual:
		b.AddBlankParagraph()
		for _, l := range table.Lines {
			b.AddTOCLine(l)
		}
	}
	b.AddPageBreak()
}

func renderBlock(b Builder, blk types.Block, opts types.RenderOptions) {
	switch blk.Kind {
	case types.BlockHeading:
		st := StyleForLevel(blk.Level)
		b.AddHeading(blk.Text, blk.Level, st.SizePt, st.Color)
	case types.BlockBullet:
		b.AddBulletParagraph(blk.Text)
	case types.BlockParagraph:
		b.AddParagraph(blk.Text)
	case types.BlockCode:
		if len(blk.Lines) == 0 {
			return
		}
		b.AddCodeParagraph(strings.Join(blk.Lines, "\n"), CodeFont, CodeSizePt, opts.CodeBlockShading)
		b.AddBlankParagraph()
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
