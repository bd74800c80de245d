// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/x2md/internal/markdown"
)

// convertXLSX renders every sheet of a workbook, in document order, as a
// level-2 heading naming the sheet followed by its grid as a pipe table.
// Sheets with zero rows are skipped entirely, heading included. A non-empty
// sheet filter converts only that sheet; naming a missing sheet is an error.
func convertXLSX(data []byte, sheet string) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheet != "" {
		if !slices.Contains(sheets, sheet) {
			return "", fmt.Errorf("sheet %q not found in workbook", sheet)
		}
		sheets = []string{sheet}
	}

	var parts []string
	for _, name := range sheets {
		rows, err := f.GetRows(name)
		if err != nil {
			return "", fmt.Errorf("reading sheet %q: %w", name, err)
		}
		if len(rows) == 0 {
			continue
		}
		parts = append(parts, "## Sheet: "+name+"\n\n"+markdown.RenderTable(rows))
	}

	return strings.Join(parts, "\n\n"), nil
}
