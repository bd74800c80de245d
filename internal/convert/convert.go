// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns document bytes into Markdown text. The format is
// selected from the input file name's extension; each converter delegates
// parsing to a format-specific library and reshapes the result into
// Markdown. Tabular formats share the markdown.RenderTable renderer.
package convert

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/x2md/pkg/types"
)

// ErrUnsupportedFormat reports a file extension outside the known set.
// Use errors.Is to test for it.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Convert transforms data into Markdown, selecting the converter from the
// lowercase text after the last dot in filename. Only the extension is
// consulted; content sniffing and declared MIME types are not.
func Convert(data []byte, filename string) (string, error) {
	return ConvertWithConfig(data, filename, types.ConvertConfig{})
}

// ConvertWithConfig is Convert with explicit conversion settings.
func ConvertWithConfig(data []byte, filename string, cfg types.ConvertConfig) (string, error) {
	ext := Extension(filename)
	format, ok := types.FormatForExtension(ext)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	switch format {
	case types.FormatCSV:
		return convertCSV(data)
	case types.FormatTXT:
		return convertTXT(data)
	case types.FormatXLSX:
		return convertXLSX(data, cfg.Sheet)
	case types.FormatDOCX:
		return convertDOCX(data)
	case types.FormatPDF:
		return convertPDF(data)
	case types.FormatEML:
		return convertEML(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Extension returns the lowercase extension of filename without the leading
// dot, or the empty string when there is none.
func Extension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}
