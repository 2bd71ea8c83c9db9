// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx writes WordprocessingML (.docx) packages. Document implements
// render.Builder: each call appends one or more paragraphs to the body, and
// Bytes assembles the zip package.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/mddoc/internal/inline"
	"github.com/pdiddy/mddoc/internal/toc"
	"github.com/pdiddy/mddoc/pkg/types"
)

const (
	twipsPerInch = 1440
	// Letter size in twips.
	pageWidth  = 12240
	pageHeight = 15840

	codeFont         = "Courier New"
	fieldPlaceholder = "Right-click and choose Update Field to build the table of contents."
)

// Options tunes text handling.
type Options struct {
	// InlineMarkup renders **bold**, *italic*, `code` and link text as
	// styled runs instead of literal characters.
	InlineMarkup bool
}

// Document accumulates a .docx body. The zero value is not usable; call New.
type Document struct {
	opts     Options
	body     bytes.Buffer
	margin   int
	title    string
	hasField bool
	created  time.Time
}

// New returns an empty document with one inch margins.
func New(opts Options) *Document {
	return &Document{opts: opts, margin: twipsPerInch, created: time.Now().UTC()}
}

// Extension returns the file extension of the package.
func (d *Document) Extension() string { return ".docx" }

// SetMargins sets all four page margins.
func (d *Document) SetMargins(inches float64) {
	d.margin = int(math.Round(inches * twipsPerInch))
}

// AddTitle adds a centered Title paragraph and records the text as the
// package title.
func (d *Document) AddTitle(text string) {
	if d.title == "" {
		d.title = text
	}
	d.paragraph(paraProps{style: "Title", align: "center"}, textRun(runProps{}, text))
}

func (d *Document) AddSubtitle(text string) {
	d.paragraph(paraProps{style: "Subtitle"}, textRun(runProps{}, text))
}

// AddHeading maps level 2 to Heading1 and level 3 to Heading2 so the
// document outline starts at the first section level.
func (d *Document) AddHeading(text string, level int, sizePt float64, color types.RGB) {
	style := "Heading2"
	if level <= 2 {
		style = "Heading1"
	}
	rp := runProps{color: color.Hex(), halfPoints: halfPoints(sizePt)}
	d.paragraph(paraProps{style: style}, d.textRuns(rp, text)...)
}

func (d *Document) AddBulletParagraph(text string) {
	d.paragraph(paraProps{style: "ListBullet", numID: bulletNumID}, d.textRuns(runProps{}, text)...)
}

func (d *Document) AddParagraph(text string) {
	d.paragraph(paraProps{}, d.textRuns(runProps{}, text)...)
}

// AddCodeParagraph writes all lines in one run separated by line breaks.
func (d *Document) AddCodeParagraph(text, fontFamily string, sizePt float64, background string) {
	rp := runProps{font: fontFamily, color: "000000", halfPoints: halfPoints(sizePt)}

	var r strings.Builder
	r.WriteString("<w:r>")
	r.WriteString(rp.xml())
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			r.WriteString("<w:br/>")
		}
		writeText(&r, line)
	}
	r.WriteString("</w:r>")

	d.paragraph(paraProps{shading: background, spacingAfter: -1}, r.String())
}

func (d *Document) AddPageBreak() {
	d.body.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
}

func (d *Document) AddBlankParagraph() {
	d.body.WriteString("<w:p/>")
}

func (d *Document) AddTOCHeading(text string) {
	d.paragraph(paraProps{style: "TOCHeading", align: "center"}, textRun(runProps{}, text))
}

// AddTOCField inserts a complex field; settings.xml then asks the host to
// refresh fields when the document is opened.
func (d *Document) AddTOCField(instruction string) {
	d.hasField = true
	var r strings.Builder
	r.WriteString(`<w:r><w:fldChar w:fldCharType="begin"/></w:r>`)
	r.WriteString(`<w:r><w:instrText xml:space="preserve">`)
	escape(&r, instruction)
	r.WriteString(`</w:instrText></w:r>`)
	r.WriteString(`<w:r><w:fldChar w:fldCharType="separate"/></w:r>`)
	r.WriteString(textRun(runProps{}, fieldPlaceholder))
	r.WriteString(`<w:r><w:fldChar w:fldCharType="end"/></w:r>`)
	d.paragraph(paraProps{}, r.String())
}

func (d *Document) AddTOCLine(line toc.Line) {
	style := "TOC1"
	if line.Indent > 1 {
		style = "TOC2"
	}
	rp := runProps{bold: line.Bold, halfPoints: halfPoints(line.SizePt)}
	d.paragraph(
		paraProps{style: style, indentLeft: int(math.Round(line.IndentInches() * twipsPerInch))},
		textRun(rp, line.Entry.Text),
		textRun(runProps{}, line.Leader),
		textRun(runProps{}, " "+line.Marker),
	)
}

// Bytes assembles the .docx package.
func (d *Document) Bytes() ([]byte, error) {
	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"docProps/core.xml", d.coreXML()},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", d.documentXML()},
		{"word/styles.xml", stylesXML},
		{"word/numbering.xml", numberingXML},
		{"word/settings.xml", d.settingsXML()},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("creating part %s: %w", p.name, err)
		}
		if _, err := w.Write([]byte(p.data)); err != nil {
			return nil, fmt.Errorf("writing part %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing docx package: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *Document) documentXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<w:document xmlns:w="%s" xmlns:r="%s"><w:body>`, nsW, nsR)
	b.Write(d.body.Bytes())
	m := strconv.Itoa(d.margin)
	fmt.Fprintf(&b, `<w:sectPr><w:pgSz w:w="%d" w:h="%d"/>`, pageWidth, pageHeight)
	b.WriteString(`<w:pgMar w:top="` + m + `" w:right="` + m + `" w:bottom="` + m + `" w:left="` + m +
		`" w:header="720" w:footer="720" w:gutter="0"/></w:sectPr>`)
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func (d *Document) settingsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<w:settings xmlns:w="%s">`, nsW)
	if d.hasField {
		b.WriteString(`<w:updateFields w:val="true"/>`)
	}
	b.WriteString(`<w:defaultTabStop w:val="720"/><w:compat><w:compatSetting w:name="compatibilityMode" w:uri="http://schemas.microsoft.com/office/word" w:val="15"/></w:compat>`)
	b.WriteString(`</w:settings>`)
	return b.String()
}

func (d *Document) coreXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
		`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" ` +
		`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	b.WriteString("<dc:title>")
	escape(&b, d.title)
	b.WriteString("</dc:title><dc:creator>mddoc</dc:creator>")
	fmt.Fprintf(&b, `<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`, d.created.Format(time.RFC3339))
	b.WriteString(`</cp:coreProperties>`)
	return b.String()
}

// textRuns renders text as runs, splitting on inline markup when enabled.
func (d *Document) textRuns(base runProps, text string) []string {
	if !d.opts.InlineMarkup {
		return []string{textRun(base, text)}
	}
	spans := inline.Parse(text)
	runs := make([]string, 0, len(spans))
	for _, sp := range spans {
		rp := base
		rp.bold = rp.bold || sp.Style.Bold
		rp.italic = sp.Style.Italic
		if sp.Style.Code {
			rp.font = codeFont
		}
		runs = append(runs, textRun(rp, sp.Text))
	}
	return runs
}

// paragraph appends a <w:p> with the given properties and pre-rendered runs.
func (d *Document) paragraph(pp paraProps, runs ...string) {
	d.body.WriteString("<w:p>")
	d.body.WriteString(pp.xml())
	for _, r := range runs {
		d.body.WriteString(r)
	}
	d.body.WriteString("</w:p>")
}

// paraProps renders <w:pPr> children in schema order.
type paraProps struct {
	style        string
	numID        int
	shading      string
	spacingAfter int // -1 for zero spacing, 0 to inherit
	indentLeft   int
	align        string
}

func (p paraProps) xml() string {
	var b strings.Builder
	if p.style != "" {
		fmt.Fprintf(&b, `<w:pStyle w:val="%s"/>`, p.style)
	}
	if p.numID > 0 {
		fmt.Fprintf(&b, `<w:numPr><w:ilvl w:val="0"/><w:numId w:val="%d"/></w:numPr>`, p.numID)
	}
	if p.shading != "" {
		fmt.Fprintf(&b, `<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, strings.ToUpper(p.shading))
	}
	if p.spacingAfter < 0 {
		b.WriteString(`<w:spacing w:after="0" w:line="240" w:lineRule="auto"/>`)
	}
	if p.indentLeft > 0 {
		fmt.Fprintf(&b, `<w:ind w:left="%d"/>`, p.indentLeft)
	}
	if p.align != "" {
		fmt.Fprintf(&b, `<w:jc w:val="%s"/>`, p.align)
	}
	if b.Len() == 0 {
		return ""
	}
	return "<w:pPr>" + b.String() + "</w:pPr>"
}

// runProps renders <w:rPr> children in schema order.
type runProps struct {
	font       string
	bold       bool
	italic     bool
	color      string
	halfPoints int
}

func (p runProps) xml() string {
	var b strings.Builder
	if p.font != "" {
		fmt.Fprintf(&b, `<w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s" w:cs="%[1]s"/>`, p.font)
	}
	if p.bold {
		b.WriteString("<w:b/>")
	}
	if p.italic {
		b.WriteString("<w:i/>")
	}
	if p.color != "" {
		fmt.Fprintf(&b, `<w:color w:val="%s"/>`, p.color)
	}
	if p.halfPoints > 0 {
		fmt.Fprintf(&b, `<w:sz w:val="%[1]d"/><w:szCs w:val="%[1]d"/>`, p.halfPoints)
	}
	if b.Len() == 0 {
		return ""
	}
	return "<w:rPr>" + b.String() + "</w:rPr>"
}

func textRun(rp runProps, text string) string {
	var b strings.Builder
	b.WriteString("<w:r>")
	b.WriteString(rp.xml())
	writeText(&b, text)
	b.WriteString("</w:r>")
	return b.String()
}

func writeText(b *strings.Builder, text string) {
	b.WriteString(`<w:t xml:space="preserve">`)
	escape(b, text)
	b.WriteString("</w:t>")
}

// escape writes s with XML special characters escaped. Characters outside
// the XML character range become U+FFFD.
func escape(b *strings.Builder, s string) {
	_ = xml.EscapeText(b, []byte(s))
}

func halfPoints(pt float64) int {
	return int(math.Round(pt * 2))
}
