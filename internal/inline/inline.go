// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inline splits a line of block text into styled spans: bold,
// italic, and code, with link and image markup reduced to their text.
// Only inline constructs are recognized; the text is always treated as a
// single paragraph, so a leading "1." or ">" stays literal.
package inline

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Style flags for a span.
type Style struct {
	Bold   bool
	Italic bool
	Code   bool
}

// Span is a run of text with a single style.
type Span struct {
	Text  string
	Style Style
}

// paragraphOnly parses inline markup without any block constructs.
var paragraphOnly = parser.NewParser(
	parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 1000)),
	parser.WithInlineParsers(parser.DefaultInlineParsers()...),
	parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
)

// Parse returns the spans of s. Adjacent spans with the same style are
// merged. Text without markup yields a single plain span; empty text yields
// no spans.
func Parse(s string) []Span {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	src := []byte(s)
	doc := paragraphOnly.Parse(text.NewReader(src))

	var spans []Span
	collect(doc, src, Style{}, &spans)
	spans = merge(spans)
	if len(spans) == 0 {
		return []Span{{Text: s}}
	}
	return spans
}

// Plain returns s with inline markup removed.
func Plain(s string) string {
	var b strings.Builder
	for _, sp := range Parse(s) {
		b.WriteString(sp.Text)
	}
	return b.String()
}

func collect(n ast.Node, src []byte, st Style, out *[]Span) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			value := node.Segment.Value(src)
			if !st.Code {
				value = util.UnescapePunctuations(value)
			}
			*out = append(*out, Span{Text: string(value), Style: st})
			if node.SoftLineBreak() || node.HardLineBreak() {
				*out = append(*out, Span{Text: " ", Style: st})
			}
		case *ast.String:
			*out = append(*out, Span{Text: string(node.Value), Style: st})
		case *ast.CodeSpan:
			code := st
			code.Code = true
			collect(node, src, code, out)
		case *ast.Emphasis:
			em := st
			if node.Level >= 2 {
				em.Bold = true
			} else {
				em.Italic = true
			}
			collect(node, src, em, out)
		case *ast.AutoLink:
			*out = append(*out, Span{Text: string(node.Label(src)), Style: st})
		case *ast.RawHTML:
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				*out = append(*out, Span{Text: string(seg.Value(src)), Style: st})
			}
		default:
			collect(c, src, st, out)
		}
	}
}

func merge(spans []Span) []Span {
	var out []Span
	for _, sp := range spans {
		if sp.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Style == sp.Style {
			out[n-1].Text += sp.Text
			continue
		}
		out = append(out, sp)
	}
	return out
}
