// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markup

import (
	"strings"

	"github.com/pdiddy/mddoc/pkg/types"
)

// Assemble converts a source document into blocks in source order.
//
// Only the first title line yields a Title block. Headings and bullets are
// emitted as soon as they are seen. Runs of plain text lines are joined with
// single spaces into one Paragraph; blank and structural lines end a run.
// A fence delimiter opens a CodeBlock that collects lines verbatim until the
// closing delimiter or end of input.
//
// When the body has no title line and the front matter names one, a Title
// block with that text is placed first.
func Assemble(doc types.SourceDocument) []types.Block {
	var (
		blocks   []types.Block
		para     []string
		hasTitle bool
	)

	flush := func() {
		if len(para) > 0 {
			blocks = append(blocks, types.Paragraph(strings.Join(para, " ")))
			para = nil
		}
	}

	cur := NewCursor(doc.Lines)
	for {
		line, ok := cur.Next()
		if !ok {
			break
		}

		if line.Kind == KindPlainText {
			para = append(para, line.Text)
			continue
		}
		flush()

		switch line.Kind {
		case KindTitle:
			if !hasTitle {
				hasTitle = true
				blocks = append(blocks, types.Title(line.Text))
			}
		case KindH2:
			blocks = append(blocks, types.Heading(2, line.Text))
		case KindH3:
			blocks = append(blocks, types.Heading(3, line.Text))
		case KindBulletItem:
			blocks = append(blocks, types.Bullet(line.Text))
		case KindFenceDelimiter:
			blocks = append(blocks, collectCode(cur, line.Text))
		case KindBlank:
		}
	}
	flush()

	if !hasTitle && doc.Meta.Title != "" {
		blocks = append([]types.Block{types.Title(doc.Meta.Title)}, blocks...)
	}
	return blocks
}

// collectCode consumes code lines up to and including the closing fence.
func collectCode(cur *Cursor, language string) types.Block {
	lines := []string{}
	for {
		line, ok := cur.Next()
		if !ok || line.Kind == KindFenceDelimiter {
			break
		}
		lines = append(lines, line.Text)
	}
	return types.Code(language, lines...)
}
