// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// TOCMode selects how a table of contents is produced.
type TOCMode string

const (
	// TOCNone omits the table of contents.
	TOCNone TOCMode = "none"
	// TOCField inserts a live field the host application fills with page numbers.
	TOCField TOCMode = "field"
	// TOCManual writes one line per heading with a placeholder page marker.
	TOCManual TOCMode = "manual"
)

// HTTPConfig holds settings for sources fetched over HTTP.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries is the number of retries on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// RenderOptions controls how blocks are laid out in the output document.
type RenderOptions struct {
	// MarginInches applies to all four page margins.
	MarginInches float64 `json:"margin_inches" yaml:"margin_inches"`

	// IncludeCoverPage adds subtitle and date lines and a page break after the title.
	IncludeCoverPage bool `json:"include_cover_page" yaml:"include_cover_page"`

	// TOC selects the table of contents mode.
	TOC TOCMode `json:"toc" yaml:"toc"`

	// CodeBlockShading is a six digit hex fill for code blocks; empty disables it.
	CodeBlockShading string `json:"code_block_shading,omitempty" yaml:"code_block_shading,omitempty"`

	// TOCTitle is the heading placed above the table of contents.
	TOCTitle string `json:"toc_title" yaml:"toc_title"`

	// CoverSubtitle and CoverDate are the cover page lines.
	CoverSubtitle string `json:"cover_subtitle,omitempty" yaml:"cover_subtitle,omitempty"`
	CoverDate     string `json:"cover_date,omitempty" yaml:"cover_date,omitempty"`

	// InlineMarkup renders **bold**, *italic*, `code` and link text as styled runs.
	InlineMarkup bool `json:"inline_markup" yaml:"inline_markup"`
}

// DefaultTOCTitle is used when RenderOptions.TOCTitle is empty.
const DefaultTOCTitle = "Contents"

var hexColorPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Validate checks option ranges. Errors wrap ErrInvalidOptions.
func (o RenderOptions) Validate() error {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.MarginInches, validation.Required, validation.Min(0.1), validation.Max(4.0)),
		validation.Field(&o.TOC, validation.In(TOCNone, TOCField, TOCManual)),
		validation.Field(&o.CodeBlockShading, validation.Match(hexColorPattern)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}

// Preset names one of the bundled RenderOptions configurations.
type Preset string

const (
	PresetBasic    Preset = "basic"
	PresetImproved Preset = "improved"
	PresetTOC      Preset = "toc"
	PresetManual   Preset = "manual"
)

// defaultShading is the light gray used by the toc and manual presets.
const defaultShading = "EEEEEE"

// PresetOptions returns the RenderOptions for a preset.
func PresetOptions(p Preset) (RenderOptions, error) {
	opts := RenderOptions{
		MarginInches: 1.0,
		TOC:          TOCNone,
		TOCTitle:     DefaultTOCTitle,
		InlineMarkup: true,
	}
	switch p {
	case PresetBasic, "":
	case PresetImproved:
		opts.MarginInches = 0.8
	case PresetTOC:
		opts.MarginInches = 0.8
		opts.IncludeCoverPage = true
		opts.TOC = TOCField
		opts.CodeBlockShading = defaultShading
	case PresetManual:
		opts.MarginInches = 0.8
		opts.IncludeCoverPage = true
		opts.TOC = TOCManual
		opts.CodeBlockShading = defaultShading
	default:
		return RenderOptions{}, fmt.Errorf("%w: unknown preset %q (want basic, improved, toc, or manual)", ErrInvalidOptions, p)
	}
	return opts, nil
}

// OutputFormat selects the document format written by the converter.
type OutputFormat string

const (
	FormatDOCX OutputFormat = "docx"
	FormatPDF  OutputFormat = "pdf"
)

// Extension returns the file extension for the format, including the dot.
func (f OutputFormat) Extension() string {
	return "." + string(f)
}

// ConversionConfig groups everything a conversion run needs.
type ConversionConfig struct {
	HTTPConfig `yaml:",inline"`

	Render RenderOptions `json:"render" yaml:"render"`

	// Format selects docx or pdf output.
	Format OutputFormat `json:"format" yaml:"format"`

	// OutputDir overrides the directory outputs are written to.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// SkipExisting leaves outputs that already exist untouched.
	SkipExisting bool `json:"skip_existing" yaml:"skip_existing"`

	// OfficePDF converts the docx output to PDF through the office container image.
	OfficePDF bool `json:"office_pdf" yaml:"office_pdf"`

	// OfficeImage is the container image used when OfficePDF is set.
	OfficeImage string `json:"office_image,omitempty" yaml:"office_image,omitempty"`
}

// Validate checks the conversion settings and the embedded render options.
func (c ConversionConfig) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Format, validation.Required, validation.In(FormatDOCX, FormatPDF)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if c.OfficePDF && c.Format != FormatDOCX {
		return fmt.Errorf("%w: office export requires docx format", ErrInvalidOptions)
	}
	return c.Render.Validate()
}

// OutputExtension returns the extension of the file the conversion produces.
func (c ConversionConfig) OutputExtension() string {
	if c.OfficePDF {
		return FormatPDF.Extension()
	}
	return c.Format.Extension()
}
