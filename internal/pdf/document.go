// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdf renders blocks to PDF with gofpdf. Document implements
// render.Builder. PDF has no live fields, so headings are registered as
// outline bookmarks and the field table of contents points readers there.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/pdiddy/mddoc/internal/inline"
	"github.com/pdiddy/mddoc/internal/toc"
	"github.com/pdiddy/mddoc/pkg/types"
)

const (
	mmPerInch = 25.4
	bodyFont  = "Helvetica"
	// Courier is the core-font stand-in for Courier New.
	monoFont   = "Courier"
	bodySizePt = 11.0
	lineHeight = 5.5
	outlineTip = "See the document outline for the table of contents."
)

// Document accumulates a PDF. The zero value is not usable; call New.
type Document struct {
	pdf     *gofpdf.Fpdf
	tr      func(string) string
	started bool
}

// New returns an empty A4 portrait document with one inch margins.
func New() *Document {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(mmPerInch, mmPerInch, mmPerInch)
	pdf.SetAutoPageBreak(true, mmPerInch)
	return &Document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// Extension returns the file extension of the document.
func (d *Document) Extension() string { return ".pdf" }

// SetMargins takes effect only before the first content call.
func (d *Document) SetMargins(inches float64) {
	if d.started {
		return
	}
	m := inches * mmPerInch
	d.pdf.SetMargins(m, m, m)
	d.pdf.SetAutoPageBreak(true, m)
}

func (d *Document) AddTitle(text string) {
	d.start()
	d.pdf.SetTitle(text, true)
	d.pdf.SetFont(bodyFont, "B", 22)
	d.pdf.MultiCell(0, 10, d.tr(text), "", "C", false)
	d.pdf.Ln(4)
}

func (d *Document) AddSubtitle(text string) {
	d.start()
	d.pdf.SetFont(bodyFont, "I", 14)
	d.pdf.SetTextColor(90, 90, 90)
	d.pdf.MultiCell(0, 7, d.tr(text), "", "L", false)
	d.pdf.SetTextColor(0, 0, 0)
}

func (d *Document) AddHeading(text string, level int, sizePt float64, color types.RGB) {
	d.start()
	outline := level - 2
	if outline < 0 {
		outline = 0
	}
	d.pdf.Ln(3)
	d.pdf.Bookmark(d.tr(inline.Plain(text)), outline, -1)
	d.pdf.SetFont(bodyFont, "B", sizePt)
	d.pdf.SetTextColor(int(color.R), int(color.G), int(color.B))
	d.pdf.MultiCell(0, sizePt*0.5, d.tr(inline.Plain(text)), "", "L", false)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.Ln(1)
}

func (d *Document) AddBulletParagraph(text string) {
	d.start()
	d.pdf.SetFont(bodyFont, "", bodySizePt)
	d.pdf.MultiCell(0, lineHeight, d.tr("• "+inline.Plain(text)), "", "L", false)
}

func (d *Document) AddParagraph(text string) {
	d.start()
	d.pdf.SetFont(bodyFont, "", bodySizePt)
	d.pdf.MultiCell(0, lineHeight, d.tr(inline.Plain(text)), "", "L", false)
	d.pdf.Ln(2)
}

// AddCodeParagraph ignores fontFamily in favor of the Courier core font.
func (d *Document) AddCodeParagraph(text, fontFamily string, sizePt float64, background string) {
	d.start()
	d.pdf.SetFont(monoFont, "", sizePt)
	fill := false
	if r, g, b, ok := parseHex(background); ok {
		d.pdf.SetFillColor(r, g, b)
		fill = true
	}
	d.pdf.MultiCell(0, sizePt*0.45, d.tr(text), "", "L", fill)
}

func (d *Document) AddPageBreak() {
	d.start()
	d.pdf.AddPage()
}

func (d *Document) AddBlankParagraph() {
	d.start()
	d.pdf.Ln(lineHeight)
}

func (d *Document) AddTOCHeading(text string) {
	d.start()
	d.pdf.SetFont(bodyFont, "B", 16)
	d.pdf.SetTextColor(0, 0, 128)
	d.pdf.MultiCell(0, 9, d.tr(text), "", "C", false)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.Ln(2)
}

// AddTOCField prints a pointer to the bookmark outline, which carries the
// live page numbers in PDF viewers.
func (d *Document) AddTOCField(instruction string) {
	d.start()
	d.pdf.SetFont(bodyFont, "I", bodySizePt)
	d.pdf.MultiCell(0, lineHeight, d.tr(outlineTip), "", "C", false)
}

func (d *Document) AddTOCLine(line toc.Line) {
	d.start()
	style := ""
	if line.Bold {
		style = "B"
	}
	left, _, _, _ := d.pdf.GetMargins()
	d.pdf.SetX(left + line.IndentInches()*mmPerInch)
	d.pdf.SetFont(bodyFont, style, line.SizePt)
	d.pdf.MultiCell(0, lineHeight+0.5, d.tr(line.Entry.Text+line.Leader+" "+line.Marker), "", "L", false)
}

// Bytes returns the finished PDF.
func (d *Document) Bytes() ([]byte, error) {
	d.start()
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// start adds the first page on the first content call.
func (d *Document) start() {
	if d.started {
		return
	}
	d.started = true
	d.pdf.AddPage()
}

// parseHex reads a six digit hex color.
func parseHex(s string) (r, g, b int, ok bool) {
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
