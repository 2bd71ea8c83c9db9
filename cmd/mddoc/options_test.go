// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mddoc/pkg/types"
)

// newTestCommand returns a convert-like command with args parsed.
func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "convert"}
	addConvertFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestResolveConfigDefaults(t *testing.T) {
	cfg, err := resolveConfig(newTestCommand(t), viper.New())
	require.NoError(t, err)

	basic, err := types.PresetOptions(types.PresetBasic)
	require.NoError(t, err)
	assert.Equal(t, basic, cfg.Render)
	assert.Equal(t, types.FormatDOCX, cfg.Format)
	assert.Equal(t, defaultTimeout, cfg.Timeout)
	assert.Equal(t, defaultUserAgent, cfg.UserAgent)
	assert.False(t, cfg.OfficePDF)
}

func TestResolveConfigPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		config map[string]any
		check  func(t *testing.T, cfg types.ConversionConfig)
	}{
		{
			name: "preset flag",
			args: []string{"--preset", "toc"},
			check: func(t *testing.T, cfg types.ConversionConfig) {
				assert.Equal(t, types.TOCField, cfg.Render.TOC)
				assert.True(t, cfg.Render.IncludeCoverPage)
				assert.Equal(t, 0.8, cfg.Render.MarginInches)
				assert.Equal(t, "EEEEEE", cfg.Render.CodeBlockShading)
			},
		},
		{
			name:   "config overrides preset",
			config: map[string]any{"preset": "manual", "render.margin_inches": 1.5},
			check: func(t *testing.T, cfg types.ConversionConfig) {
				assert.Equal(t, types.TOCManual, cfg.Render.TOC)
				assert.Equal(t, 1.5, cfg.Render.MarginInches)
			},
		},
		{
			name:   "flag overrides config",
			args:   []string{"--margin", "2", "--toc", "none"},
			config: map[string]any{"preset": "manual", "render.margin_inches": 1.5},
			check: func(t *testing.T, cfg types.ConversionConfig) {
				assert.Equal(t, 2.0, cfg.Render.MarginInches)
				assert.Equal(t, types.TOCNone, cfg.Render.TOC)
				assert.True(t, cfg.Render.IncludeCoverPage)
			},
		},
		{
			name:   "flag preset beats config preset",
			args:   []string{"--preset", "improved"},
			config: map[string]any{"preset": "manual"},
			check: func(t *testing.T, cfg types.ConversionConfig) {
				assert.Equal(t, types.TOCNone, cfg.Render.TOC)
				assert.Equal(t, 0.8, cfg.Render.MarginInches)
			},
		},
		{
			name: "cover text and inline",
			args: []string{"--cover", "--subtitle", "Architecture", "--date", "May 2025", "--no-inline", "--toc-title", "Summary"},
			check: func(t *testing.T, cfg types.ConversionConfig) {
				assert.True(t, cfg.Render.IncludeCoverPage)
				assert.Equal(t, "Architecture", cfg.Render.CoverSubtitle)
				assert.Equal(t, "May 2025", cfg.Render.CoverDate)
				assert.Equal(t, "Summary", cfg.Render.TOCTitle)
				assert.False(t, cfg.Render.InlineMarkup)
			},
		},
		{
			name:   "output settings",
			args:   []string{"--format", "pdf", "--output-dir", "out", "--skip-existing", "--timeout", "5s"},
			config: map[string]any{"user_agent": "custom/1", "max_retries": 2},
			check: func(t *testing.T, cfg types.ConversionConfig) {
				assert.Equal(t, types.FormatPDF, cfg.Format)
				assert.Equal(t, "out", cfg.OutputDir)
				assert.True(t, cfg.SkipExisting)
				assert.Equal(t, 5*time.Second, cfg.Timeout)
				assert.Equal(t, "custom/1", cfg.UserAgent)
				assert.Equal(t, 2, cfg.MaxRetries)
				assert.Equal(t, ".pdf", cfg.OutputExtension())
			},
		},
		{
			name: "office export",
			args: []string{"--office-pdf", "--office-image", "lo:7"},
			check: func(t *testing.T, cfg types.ConversionConfig) {
				assert.True(t, cfg.OfficePDF)
				assert.Equal(t, "lo:7", cfg.OfficeImage)
				assert.Equal(t, ".pdf", cfg.OutputExtension())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.config {
				v.Set(k, val)
			}
			cfg, err := resolveConfig(newTestCommand(t, tt.args...), v)
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestResolveConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown preset", []string{"--preset", "fancy"}},
		{"bad toc mode", []string{"--toc", "sidebar"}},
		{"margin too small", []string{"--margin", "0.01"}},
		{"bad shading", []string{"--code-shading", "grey"}},
		{"bad format", []string{"--format", "odt"}},
		{"office with pdf format", []string{"--office-pdf", "--format", "pdf"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveConfig(newTestCommand(t, tt.args...), viper.New())
			assert.ErrorIs(t, err, types.ErrInvalidOptions)
		})
	}
}

func TestSetupViperEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MDDOC_RENDER_TOC", "manual")
	t.Setenv("MDDOC_RENDER_INCLUDE_COVER_PAGE", "true")

	v := viper.New()
	require.NoError(t, setupViper(v, ""))

	cfg, err := resolveConfig(newTestCommand(t), v)
	require.NoError(t, err)
	assert.Equal(t, types.TOCManual, cfg.Render.TOC)
	assert.True(t, cfg.Render.IncludeCoverPage)
}

func TestSetupViperConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mddoc.yaml")
	content := "preset: improved\nformat: pdf\nrender:\n  toc: field\n  code_block_shading: DDEEFF\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := viper.New()
	require.NoError(t, setupViper(v, path))

	cfg, err := resolveConfig(newTestCommand(t), v)
	require.NoError(t, err)
	assert.Equal(t, 0.8, cfg.Render.MarginInches)
	assert.Equal(t, types.TOCField, cfg.Render.TOC)
	assert.Equal(t, "DDEEFF", cfg.Render.CodeBlockShading)
	assert.Equal(t, types.FormatPDF, cfg.Format)
}

func TestSetupViperMissingExplicitFile(t *testing.T) {
	err := setupViper(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestWriteBlocks(t *testing.T) {
	blocks := []types.Block{
		types.Title("Guide"),
		types.Heading(2, "Install"),
		types.Code("py", "x=1"),
	}

	var yml bytes.Buffer
	require.NoError(t, writeBlocks(&yml, blocks, false))
	assert.Contains(t, yml.String(), "kind: title")
	assert.Contains(t, yml.String(), "level: 2")
	assert.Contains(t, yml.String(), "language: py")

	var js bytes.Buffer
	require.NoError(t, writeBlocks(&js, blocks, true))
	var decoded []types.Block
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, blocks, decoded)

	js.Reset()
	require.NoError(t, writeBlocks(&js, nil, true))
	assert.Equal(t, "[]", strings.TrimSpace(js.String()))
}

func TestWriteTOC(t *testing.T) {
	var buf bytes.Buffer
	writeTOC(&buf, []types.Block{
		types.Title("Guide"),
		types.Heading(2, "Install"),
		types.Heading(3, "Linux"),
	})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "  Install."))
	assert.True(t, strings.HasPrefix(lines[1], "    Linux."))
	assert.True(t, strings.HasSuffix(lines[1], " X"))
}
