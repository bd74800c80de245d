// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the x2md CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the x2md CLI.
var rootCmd = &cobra.Command{
	Use:   "x2md",
	Short: "Convert documents to Markdown",
	Long: `x2md converts documents of several formats (DOCX, PDF, XLSX, CSV, TXT, EML)
into Markdown text. Each format delegates parsing to a format-specific
library; tabular data is rendered as Markdown pipe tables.

Inputs are local files or HTTP(S) URLs. The format is selected from the file
extension alone. Output goes to stdout or, with -o, to a file.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./x2md.yaml or ~/.config/x2md/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("x2md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "x2md"))
		}
	}

	viper.SetEnvPrefix("X2MD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
