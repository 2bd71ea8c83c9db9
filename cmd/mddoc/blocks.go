// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mddoc/internal/convert"
	"github.com/pdiddy/mddoc/internal/source"
	"github.com/pdiddy/mddoc/pkg/types"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks <input>",
	Short: "Print the block sequence assembled from an input",
	Long: `Blocks loads one input and prints the title, headings, paragraphs,
bullets, and code blocks it contains, in order, as YAML or JSON. Nothing is
written to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runBlocks,
}

func init() {
	blocksCmd.Flags().Bool("json", false, "output blocks as JSON")
	rootCmd.AddCommand(blocksCmd)
}

func runBlocks(cmd *cobra.Command, args []string) error {
	blocks, err := loadBlocks(cmd, args[0])
	if err != nil {
		return err
	}
	asJSON, _ := cmd.Flags().GetBool("json")
	return writeBlocks(os.Stdout, blocks, asJSON)
}

// loadBlocks reads location with the configured HTTP settings and returns
// its blocks.
func loadBlocks(cmd *cobra.Command, location string) ([]types.Block, error) {
	loader := source.NewLoader(nil, httpConfig(cmd, viper.GetViper()), os.Stderr)
	doc, err := loader.Load(cmd.Context(), location)
	if err != nil {
		return nil, err
	}
	return convert.Transform(*doc), nil
}

func writeBlocks(w io.Writer, blocks []types.Block, asJSON bool) error {
	if blocks == nil {
		blocks = []types.Block{}
	}
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(blocks); err != nil {
			return fmt.Errorf("encoding blocks: %w", err)
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(blocks); err != nil {
		return fmt.Errorf("encoding blocks: %w", err)
	}
	return enc.Close()
}
