// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the conversion pipeline: load the source, assemble
// blocks, render them on a docx or pdf builder, optionally export through
// an office container, and write the result atomically.
package convert

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/pdiddy/mddoc/internal/docx"
	"github.com/pdiddy/mddoc/internal/markup"
	"github.com/pdiddy/mddoc/internal/output"
	"github.com/pdiddy/mddoc/internal/pdf"
	"github.com/pdiddy/mddoc/internal/render"
	"github.com/pdiddy/mddoc/pkg/types"
)

var (
	green  = color.New(color.FgGreen, color.Bold).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Loader reads a source document from a path or URL.
type Loader interface {
	Load(ctx context.Context, location string) (*types.SourceDocument, error)
}

// Exporter turns .docx bytes into PDF bytes.
type Exporter interface {
	Export(ctx context.Context, docx []byte) ([]byte, error)
}

// builder is a render target that can serialize itself.
type builder interface {
	render.Builder
	Bytes() ([]byte, error)
}

// Result describes one finished conversion.
type Result struct {
	Input    string
	Output   string
	Blocks   int
	Headings int
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the number of inputs processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any input failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Transform turns a source document into its block sequence. It performs no
// I/O and never fails.
func Transform(doc types.SourceDocument) []types.Block {
	return markup.Assemble(doc)
}

// Converter carries the configuration shared by every conversion in a run.
type Converter struct {
	loader   Loader
	exporter Exporter
	cfg      types.ConversionConfig
}

// New validates cfg and returns a Converter. exporter may be nil unless
// cfg.OfficePDF is set.
func New(loader Loader, exporter Exporter, cfg types.ConversionConfig) (*Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.OfficePDF && exporter == nil {
		return nil, fmt.Errorf("%w: office export requested without an exporter", types.ErrInvalidOptions)
	}
	return &Converter{loader: loader, exporter: exporter, cfg: cfg}, nil
}

// OutputPath returns where input is written by default.
func (c *Converter) OutputPath(input string) string {
	return output.Path(input, c.cfg.OutputDir, c.cfg.OutputExtension())
}

// Render lays blocks out on a fresh builder for the configured format and
// returns the serialized document.
func (c *Converter) Render(blocks []types.Block, meta types.DocumentMeta) ([]byte, error) {
	var b builder
	switch c.cfg.Format {
	case types.FormatPDF:
		b = pdf.New()
	default:
		b = docx.New(docx.Options{InlineMarkup: c.cfg.Render.InlineMarkup})
	}
	render.Render(b, blocks, c.cfg.Render, meta)

	data, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("serializing %s: %w", c.cfg.Format, err)
	}
	return data, nil
}

// ConvertDocument converts input and writes it to outPath, or to
// OutputPath(input) when outPath is empty.
func (c *Converter) ConvertDocument(ctx context.Context, input, outPath string) (*Result, error) {
	if outPath == "" {
		outPath = c.OutputPath(input)
	}

	doc, err := c.loader.Load(ctx, input)
	if err != nil {
		return nil, err
	}

	blocks := Transform(*doc)
	data, err := c.Render(blocks, doc.Meta)
	if err != nil {
		return nil, err
	}

	if c.cfg.OfficePDF {
		data, err = c.exporter.Export(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("exporting %s: %w", input, err)
		}
	}

	if err := output.WriteFile(outPath, data); err != nil {
		return nil, err
	}

	return &Result{
		Input:    input,
		Output:   outPath,
		Blocks:   len(blocks),
		Headings: countHeadings(blocks),
	}, nil
}

// ConvertBatch converts each input in order, printing one status line per
// input and a summary to w. Inputs whose output exists are skipped only when
// SkipExisting is set. A failed input does not stop the batch.
func (c *Converter) ConvertBatch(ctx context.Context, inputs []string, w io.Writer) BatchResult {
	var result BatchResult
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			fmt.Fprintf(w, "%s  %s (%v)\n", red("failed:"), in, err)
			result.Failed++
			continue
		}

		outPath := c.OutputPath(in)
		if c.cfg.SkipExisting && output.Exists(outPath) {
			fmt.Fprintf(w, "%s %s (already exists)\n", yellow("skipped:"), outPath)
			result.Skipped++
			continue
		}

		res, err := c.ConvertDocument(ctx, in, outPath)
		if err != nil {
			fmt.Fprintf(w, "%s  %s (%v)\n", red("failed:"), in, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "%s %s -> %s (%d blocks, %d headings)\n",
			green("converted:"), in, res.Output, res.Blocks, res.Headings)
		result.Converted++
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

func countHeadings(blocks []types.Block) int {
	n := 0
	for _, b := range blocks {
		if b.Kind == types.BlockHeading {
			n++
		}
	}
	return n
}
