// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetOptions(t *testing.T) {
	tests := []struct {
		preset     Preset
		wantMargin float64
		wantCover  bool
		wantTOC    TOCMode
		wantShade  string
	}{
		{preset: PresetBasic, wantMargin: 1.0, wantTOC: TOCNone},
		{preset: "", wantMargin: 1.0, wantTOC: TOCNone},
		{preset: PresetImproved, wantMargin: 0.8, wantTOC: TOCNone},
		{preset: PresetTOC, wantMargin: 0.8, wantCover: true, wantTOC: TOCField, wantShade: "EEEEEE"},
		{preset: PresetManual, wantMargin: 0.8, wantCover: true, wantTOC: TOCManual, wantShade: "EEEEEE"},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			opts, err := PresetOptions(tt.preset)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMargin, opts.MarginInches)
			assert.Equal(t, tt.wantCover, opts.IncludeCoverPage)
			assert.Equal(t, tt.wantTOC, opts.TOC)
			assert.Equal(t, tt.wantShade, opts.CodeBlockShading)
			assert.Equal(t, DefaultTOCTitle, opts.TOCTitle)
			assert.True(t, opts.InlineMarkup)
			assert.NoError(t, opts.Validate())
		})
	}
}

func TestPresetOptionsUnknown(t *testing.T) {
	_, err := PresetOptions("fancy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOptions))
	assert.Contains(t, err.Error(), "fancy")
}

func TestRenderOptionsValidate(t *testing.T) {
	valid := RenderOptions{MarginInches: 1, TOC: TOCManual, CodeBlockShading: "eeeeee"}

	tests := []struct {
		name    string
		mutate  func(o *RenderOptions)
		wantErr bool
	}{
		{name: "valid", mutate: func(o *RenderOptions) {}},
		{name: "empty toc is allowed", mutate: func(o *RenderOptions) { o.TOC = "" }},
		{name: "empty shading is allowed", mutate: func(o *RenderOptions) { o.CodeBlockShading = "" }},
		{name: "zero margin", mutate: func(o *RenderOptions) { o.MarginInches = 0 }, wantErr: true},
		{name: "huge margin", mutate: func(o *RenderOptions) { o.MarginInches = 10 }, wantErr: true},
		{name: "unknown toc mode", mutate: func(o *RenderOptions) { o.TOC = "auto" }, wantErr: true},
		{name: "bad shading", mutate: func(o *RenderOptions) { o.CodeBlockShading = "#EEE" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid
			tt.mutate(&o)
			err := o.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidOptions))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConversionConfigValidate(t *testing.T) {
	render, err := PresetOptions(PresetBasic)
	require.NoError(t, err)

	cfg := ConversionConfig{Render: render, Format: FormatDOCX}
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, ".docx", cfg.OutputExtension())

	cfg.OfficePDF = true
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, ".pdf", cfg.OutputExtension())

	cfg.Format = FormatPDF
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidOptions)

	cfg = ConversionConfig{Render: render, Format: "odt"}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidOptions)
}

func TestNewSourceDocument(t *testing.T) {
	doc := NewSourceDocument("a.md", "# T\r\nline\n")
	assert.Equal(t, "a.md", doc.Location)
	assert.Equal(t, []string{"# T", "line", ""}, doc.Lines)
}

func TestRGBHex(t *testing.T) {
	assert.Equal(t, "000080", RGB{B: 128}.Hex())
	assert.Equal(t, "000064", RGB{B: 100}.Hex())
	assert.Equal(t, "EEEEEE", RGB{R: 0xee, G: 0xee, B: 0xee}.Hex())
}
