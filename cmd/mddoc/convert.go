// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mddoc/internal/container"
	"github.com/pdiddy/mddoc/internal/convert"
	"github.com/pdiddy/mddoc/internal/export"
	"github.com/pdiddy/mddoc/internal/source"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input...>",
	Short: "Convert markup files, HTML pages, or URLs to .docx or .pdf",
	Long: `Convert reads each input, assembles its blocks, and writes a document
beside it (or in --output-dir). Settings come from the preset, then the
config file and MDDOC_ environment variables, then explicit flags.

With --office-pdf the .docx is converted to PDF by an office suite running
in a container image (docker or podman).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	addConvertFlags(convertCmd)
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("output")
	if outPath != "" && len(args) > 1 {
		return fmt.Errorf("--output accepts a single input, got %d", len(args))
	}

	cfg, err := resolveConfig(cmd, viper.GetViper())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var exporter convert.Exporter
	if cfg.OfficePDF {
		rt, err := container.Detect(ctx)
		if err != nil {
			return err
		}
		office, err := export.NewOffice(ctx, rt, cfg.OfficeImage)
		if err != nil {
			return err
		}
		exporter = office
	}

	loader := source.NewLoader(nil, cfg.HTTPConfig, os.Stderr)
	c, err := convert.New(loader, exporter, cfg)
	if err != nil {
		return err
	}

	if outPath != "" {
		res, err := c.ConvertDocument(ctx, args[0], outPath)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s (%d blocks, %d headings)\n",
			color.New(color.FgGreen, color.Bold).Sprint("converted:"), res.Output, res.Blocks, res.Headings)
		return nil
	}

	result := c.ConvertBatch(ctx, args, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d input(s) failed conversion", result.Failed)
	}
	return nil
}
