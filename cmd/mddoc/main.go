// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mddoc CLI. mddoc converts
// lightweight markup documents into .docx or .pdf files.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "MDDOC"

// rootCmd is the base command for the mddoc CLI.
var rootCmd = &cobra.Command{
	Use:   "mddoc",
	Short: "Convert markup documents to word-processor documents",
	Long: `mddoc reads a Markdown-subset document (title, two heading levels,
paragraphs, bullets, fenced code) from a file, an HTML page, or a URL and
writes a .docx or .pdf with optional cover page and table of contents.

Presets reproduce common layouts: basic, improved, toc, and manual.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mddoc.yaml or ~/.config/mddoc/mddoc.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if err := setupViper(viper.GetViper(), cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, "Config:", err)
		return
	}
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintln(os.Stderr, "Using config file:", used)
	}
}

// setupViper points v at the config file and the MDDOC_ environment. A
// missing default config file is not an error; a missing or unreadable
// explicit one is.
func setupViper(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("mddoc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "mddoc"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
