// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mddoc/internal/export"
	"github.com/pdiddy/mddoc/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "mddoc/0.1"
)

// Config keys. Environment variables use the same path with dots replaced,
// e.g. MDDOC_RENDER_TOC.
const (
	keyPreset       = "preset"
	keyFormat       = "format"
	keyOutputDir    = "output_dir"
	keySkipExisting = "skip_existing"
	keyOfficePDF    = "office_pdf"
	keyOfficeImage  = "office_image"
	keyTimeout      = "timeout"
	keyUserAgent    = "user_agent"
	keyMaxRetries   = "max_retries"

	keyMargin       = "render.margin_inches"
	keyCover        = "render.include_cover_page"
	keyTOC          = "render.toc"
	keyShading      = "render.code_block_shading"
	keyTOCTitle     = "render.toc_title"
	keySubtitle     = "render.cover_subtitle"
	keyDate         = "render.cover_date"
	keyInlineMarkup = "render.inline_markup"
)

// addConvertFlags registers the flags resolveConfig reads.
func addConvertFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("output", "o", "", "output file (single input only)")
	f.String("output-dir", "", "directory for outputs (default: beside each input)")
	f.String("format", string(types.FormatDOCX), "output format: docx or pdf")
	f.String("preset", string(types.PresetBasic), "layout preset: basic, improved, toc, or manual")
	f.String("toc", "", "table of contents: none, field, or manual")
	f.Bool("cover", false, "add a cover page after the title")
	f.Float64("margin", 0, "page margin in inches")
	f.String("code-shading", "", "code block fill as RRGGBB")
	f.String("toc-title", "", "heading above the table of contents")
	f.String("subtitle", "", "cover page subtitle")
	f.String("date", "", "cover page date line")
	f.Bool("no-inline", false, "keep **bold**, *italic* and `code` markers as literal text")
	f.Bool("skip-existing", false, "leave existing outputs untouched")
	f.Bool("office-pdf", false, "convert the docx to PDF with the office container image")
	f.String("office-image", export.DefaultImage, "container image used by --office-pdf")
	f.Duration("timeout", 0, "HTTP timeout for URL sources (default 30s)")
}

// resolveConfig layers settings: the preset, then config file and
// environment, then flags the user set explicitly.
func resolveConfig(cmd *cobra.Command, v *viper.Viper) (types.ConversionConfig, error) {
	preset := string(types.PresetBasic)
	stringSetting(cmd, v, "preset", keyPreset, &preset)

	opts, err := types.PresetOptions(types.Preset(preset))
	if err != nil {
		return types.ConversionConfig{}, err
	}

	cfg := types.ConversionConfig{
		HTTPConfig:  httpConfig(cmd, v),
		Render:      opts,
		Format:      types.FormatDOCX,
		OfficeImage: export.DefaultImage,
	}

	format := string(cfg.Format)
	stringSetting(cmd, v, "format", keyFormat, &format)
	cfg.Format = types.OutputFormat(format)
	stringSetting(cmd, v, "output-dir", keyOutputDir, &cfg.OutputDir)
	boolSetting(cmd, v, "skip-existing", keySkipExisting, &cfg.SkipExisting)
	boolSetting(cmd, v, "office-pdf", keyOfficePDF, &cfg.OfficePDF)
	stringSetting(cmd, v, "office-image", keyOfficeImage, &cfg.OfficeImage)

	r := &cfg.Render
	floatSetting(cmd, v, "margin", keyMargin, &r.MarginInches)
	boolSetting(cmd, v, "cover", keyCover, &r.IncludeCoverPage)
	mode := string(r.TOC)
	stringSetting(cmd, v, "toc", keyTOC, &mode)
	r.TOC = types.TOCMode(mode)
	stringSetting(cmd, v, "code-shading", keyShading, &r.CodeBlockShading)
	stringSetting(cmd, v, "toc-title", keyTOCTitle, &r.TOCTitle)
	stringSetting(cmd, v, "subtitle", keySubtitle, &r.CoverSubtitle)
	stringSetting(cmd, v, "date", keyDate, &r.CoverDate)
	if v.IsSet(keyInlineMarkup) {
		r.InlineMarkup = v.GetBool(keyInlineMarkup)
	}
	if changed(cmd, "no-inline") {
		noInline, _ := cmd.Flags().GetBool("no-inline")
		r.InlineMarkup = !noInline
	}

	if err := cfg.Validate(); err != nil {
		return types.ConversionConfig{}, err
	}
	return cfg, nil
}

// httpConfig resolves the settings used to fetch URL sources.
func httpConfig(cmd *cobra.Command, v *viper.Viper) types.HTTPConfig {
	cfg := types.HTTPConfig{Timeout: defaultTimeout, UserAgent: defaultUserAgent}
	if v.IsSet(keyTimeout) {
		cfg.Timeout = v.GetDuration(keyTimeout)
	}
	if changed(cmd, "timeout") {
		cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	stringSetting(cmd, v, "", keyUserAgent, &cfg.UserAgent)
	if v.IsSet(keyMaxRetries) {
		cfg.MaxRetries = v.GetInt(keyMaxRetries)
	}
	return cfg
}

func changed(cmd *cobra.Command, flag string) bool {
	return flag != "" && cmd.Flags().Lookup(flag) != nil && cmd.Flags().Changed(flag)
}

func stringSetting(cmd *cobra.Command, v *viper.Viper, flag, key string, dst *string) {
	if v.IsSet(key) {
		*dst = v.GetString(key)
	}
	if changed(cmd, flag) {
		*dst, _ = cmd.Flags().GetString(flag)
	}
}

func boolSetting(cmd *cobra.Command, v *viper.Viper, flag, key string, dst *bool) {
	if v.IsSet(key) {
		*dst = v.GetBool(key)
	}
	if changed(cmd, flag) {
		*dst, _ = cmd.Flags().GetBool(flag)
	}
}

func floatSetting(cmd *cobra.Command, v *viper.Viper, flag, key string, dst *float64) {
	if v.IsSet(key) {
		*dst = v.GetFloat64(key)
	}
	if changed(cmd, flag) {
		*dst, _ = cmd.Flags().GetFloat64(flag)
	}
}
