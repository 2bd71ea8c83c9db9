// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// DocumentMeta holds the optional YAML front matter of a source document.
type DocumentMeta struct {
	// Title is used only when the body has no "# " line.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Subtitle fills the cover page when RenderOptions leaves it empty.
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`

	// Date fills the cover page when RenderOptions leaves it empty.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`

	// Author is informational; it is written to the cover page after the date.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`
}

// SourceDocument is the raw markup as an ordered sequence of lines.
// It is not modified after loading.
type SourceDocument struct {
	// Location is the path or URL the document was loaded from.
	Location string `json:"location" yaml:"location"`

	// Lines holds the body text, front matter removed, split on newlines.
	Lines []string `json:"lines" yaml:"lines"`

	// Meta is the parsed front matter, zero when the source has none.
	Meta DocumentMeta `json:"meta" yaml:"meta"`
}

// NewSourceDocument splits text into lines. A trailing carriage return on
// each line is dropped so CRLF sources classify like LF sources.
func NewSourceDocument(location, text string) SourceDocument {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return SourceDocument{Location: location, Lines: lines}
}

// BlockKind tags the variant held by a Block.
type BlockKind string

const (
	BlockTitle     BlockKind = "title"
	BlockHeading   BlockKind = "heading"
	BlockBullet    BlockKind = "bullet"
	BlockParagraph BlockKind = "paragraph"
	BlockCode      BlockKind = "code"
)

// Block is one structural unit of the target document. Only the fields
// relevant to Kind are set: Level for headings, Language and Lines for code
// blocks, Text for everything else.
type Block struct {
	Kind     BlockKind `json:"kind" yaml:"kind"`
	Level    int       `json:"level,omitempty" yaml:"level,omitempty"`
	Text     string    `json:"text,omitempty" yaml:"text,omitempty"`
	Language string    `json:"language,omitempty" yaml:"language,omitempty"`
	Lines    []string  `json:"lines,omitempty" yaml:"lines,omitempty"`
}

// Title returns a title block.
func Title(text string) Block { return Block{Kind: BlockTitle, Text: text} }

// Heading returns a heading block of the given level (2 or 3).
func Heading(level int, text string) Block {
	return Block{Kind: BlockHeading, Level: level, Text: text}
}

// Bullet returns a bullet item block.
func Bullet(text string) Block { return Block{Kind: BlockBullet, Text: text} }

// Paragraph returns a paragraph block.
func Paragraph(text string) Block { return Block{Kind: BlockParagraph, Text: text} }

// Code returns a code block. An empty language means the fence had no tag.
func Code(language string, lines ...string) Block {
	if lines == nil {
		lines = []string{}
	}
	return Block{Kind: BlockCode, Language: language, Lines: lines}
}

// TocEntry is one heading as it appears in a table of contents.
type TocEntry struct {
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as six uppercase hex digits, e.g. "000080".
func (c RGB) Hex() string {
	const digits = "0123456789ABCDEF"
	b := []byte{
		digits[c.R>>4], digits[c.R&0x0f],
		digits[c.G>>4], digits[c.G&0x0f],
		digits[c.B>>4], digits[c.B&0x0f],
	}
	return string(b)
}
