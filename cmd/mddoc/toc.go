// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mddoc/internal/toc"
	"github.com/pdiddy/mddoc/pkg/types"
)

var tocCmd = &cobra.Command{
	Use:   "toc <input>",
	Short: "Print the manual table of contents for an input",
	Long: `Toc prints one line per level 2 and level 3 heading, indented by level,
with the dotted leader and page marker used by the manual table of contents.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		blocks, err := loadBlocks(cmd, args[0])
		if err != nil {
			return err
		}
		writeTOC(os.Stdout, blocks)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tocCmd)
}

func writeTOC(w io.Writer, blocks []types.Block) {
	for _, l := range toc.Manual(toc.Entries(blocks)) {
		fmt.Fprintln(w, l.String())
	}
}
