// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared domain types for x2md: input formats,
// conversion configuration, and document metadata.
package types

import "sort"

// Format identifies a supported input document format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTXT  Format = "txt"
	FormatXLSX Format = "xlsx"
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
	FormatEML  Format = "eml"
)

// formatByExtension maps a lowercase file extension (without the dot) to its
// format. Legacy spreadsheet extensions route to the XLSX converter; files
// the spreadsheet parser cannot read fail at parse time.
var formatByExtension = map[string]Format{
	"csv":  FormatCSV,
	"txt":  FormatTXT,
	"xlsx": FormatXLSX,
	"xls":  FormatXLSX,
	"xlsm": FormatXLSX,
	"docx": FormatDOCX,
	"pdf":  FormatPDF,
	"eml":  FormatEML,
}

// FormatForExtension returns the format registered for ext, a lowercase
// extension without the leading dot. ok is false for unknown extensions.
func FormatForExtension(ext string) (Format, bool) {
	f, ok := formatByExtension[ext]
	return f, ok
}

// SupportedExtensions returns every known extension in sorted order.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(formatByExtension))
	for ext := range formatByExtension {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
