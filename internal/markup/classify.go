// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markup turns source lines into an ordered sequence of document
// blocks. Classification is a pure function of one line and the code-block
// state; the Cursor owns that state while walking a document, and Assemble
// groups the classified lines into blocks.
package markup

import "strings"

// LineKind is the classification of one source line.
type LineKind int

const (
	KindPlainText LineKind = iota
	KindTitle
	KindH2
	KindH3
	KindBulletItem
	KindFenceDelimiter
	KindBlank
	KindCodeLine
)

var kindNames = map[LineKind]string{
	KindPlainText:      "PlainText",
	KindTitle:          "Title",
	KindH2:             "H2",
	KindH3:             "H3",
	KindBulletItem:     "BulletItem",
	KindFenceDelimiter: "FenceDelimiter",
	KindBlank:          "Blank",
	KindCodeLine:       "CodeLine",
}

func (k LineKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "LineKind(?)"
}

const fence = "```"

// prefixRules are checked in order; the first match wins.
var prefixRules = []struct {
	prefix string
	kind   LineKind
}{
	{"# ", KindTitle},
	{"## ", KindH2},
	{"### ", KindH3},
	{"- ", KindBulletItem},
	{fence, KindFenceDelimiter},
}

// Classify returns the kind of line given whether the caller is inside a
// fenced code block. Inside a block every line is a CodeLine except a fence
// delimiter, which closes it.
func Classify(line string, inCodeBlock bool) LineKind {
	trimmed := strings.TrimSpace(line)
	if inCodeBlock {
		if strings.HasPrefix(trimmed, fence) {
			return KindFenceDelimiter
		}
		return KindCodeLine
	}
	for _, r := range prefixRules {
		if strings.HasPrefix(trimmed, r.prefix) {
			return r.kind
		}
	}
	if trimmed == "" {
		return KindBlank
	}
	return KindPlainText
}

// content returns the part of the line a block is built from: the text after
// the structural prefix for titles, headings and bullets, the fence remainder
// (language tag) for delimiters, the verbatim line for code, and the trimmed
// line otherwise.
func content(line string, kind LineKind) string {
	trimmed := strings.TrimSpace(line)
	switch kind {
	case KindTitle, KindH2, KindH3, KindBulletItem:
		_, rest, _ := strings.Cut(trimmed, " ")
		return strings.TrimSpace(rest)
	case KindFenceDelimiter:
		return strings.TrimSpace(strings.TrimPrefix(trimmed, fence))
	case KindCodeLine:
		return line
	default:
		return trimmed
	}
}
