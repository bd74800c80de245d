// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/x2md/internal/convert"
	"github.com/pdiddy/x2md/internal/fetch"
	"github.com/pdiddy/x2md/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file|url>",
	Short: "Convert a document to Markdown",
	Long: `Convert reads a document from a local file or an HTTP(S) URL, converts it
to Markdown, and writes the result to stdout or to the file given with -o.
The converter is selected from the input name's extension.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		output, _ := cmd.Flags().GetString("output")
		save, _ := cmd.Flags().GetBool("save")

		var cfg types.ConvertConfig
		cfg.Sheet, _ = cmd.Flags().GetString("sheet")
		cfg.Frontmatter, _ = cmd.Flags().GetBool("frontmatter")

		data, name, err := readInput(cmd, input)
		if err != nil {
			return err
		}

		md, err := convert.ConvertWithConfig(data, name, cfg)
		if err != nil {
			return err
		}

		if output == "" && save {
			output = defaultOutputPath(input, name)
		}

		if cfg.Frontmatter {
			format, _ := types.FormatForExtension(convert.Extension(name))
			md, err = convert.WithFrontmatter(types.DocumentMeta{Source: input, Format: format}, md)
			if err != nil {
				return err
			}
		}

		if output == "" {
			fmt.Fprintln(cmd.OutOrStdout(), md)
			return nil
		}
		if err := os.WriteFile(output, []byte(md), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "converted: %s -> %s\n", input, output)
		return nil
	},
}

// defaultOutputPath derives the Markdown output path for input: the input
// path with its extension replaced by .md. Remote inputs use the URL's base
// name so the file lands in the working directory.
func defaultOutputPath(input, name string) string {
	base := input
	if isRemote(input) {
		base = name
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".md"
}

func isRemote(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// readInput loads the document bytes from a local path or an HTTP(S) URL and
// returns them with the name used for format detection.
func readInput(cmd *cobra.Command, input string) ([]byte, string, error) {
	if isRemote(input) {
		cfg := types.FetchConfig{
			Timeout:    viper.GetDuration("fetch.timeout"),
			UserAgent:  viper.GetString("fetch.user_agent"),
			MaxRetries: viper.GetInt("fetch.max_retries"),
		}
		if cfg.Timeout == 0 {
			cfg.Timeout = 30 * time.Second
		}
		if cfg.UserAgent == "" {
			cfg.UserAgent = "x2md/" + version
		}

		client := &http.Client{Timeout: cfg.Timeout}
		data, err := fetch.Get(cmd.Context(), client, input, cfg)
		if err != nil {
			return nil, "", err
		}
		name := path.Base(strings.SplitN(input, "?", 2)[0])
		return data, name, nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", input, err)
	}
	return data, filepath.Base(input), nil
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output Markdown file (default: stdout)")
	convertCmd.Flags().Bool("save", false, "write to the input name with .md instead of stdout")
	convertCmd.Flags().StringP("sheet", "s", "", "convert only this sheet (spreadsheets)")
	convertCmd.Flags().Bool("frontmatter", false, "prepend YAML frontmatter to the output")

	rootCmd.AddCommand(convertCmd)
}
