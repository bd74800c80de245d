// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown renders tabular data as Markdown text.
package markdown

import "strings"

// RenderTable renders rows as a Markdown pipe table. Row 0 is the header;
// the second output line is a separator with one "---" cell per header
// column. Body rows shorter than the header are right-padded with empty
// cells to the header width; longer rows keep every cell and render wider
// than the separator. An empty row sequence renders as the empty string.
//
// Cell values are embedded verbatim: a pipe or newline inside a cell
// corrupts the table. Callers own any escaping.
func RenderTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	header := rows[0]
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, renderRow(header))

	separator := make([]string, len(header))
	for i := range separator {
		separator[i] = "---"
	}
	lines = append(lines, renderRow(separator))

	for _, row := range rows[1:] {
		if len(row) < len(header) {
			padded := make([]string, len(header))
			copy(padded, row)
			row = padded
		}
		lines = append(lines, renderRow(row))
	}

	return strings.Join(lines, "\n")
}

// renderRow joins cells with " | " and wraps the result in leading and
// trailing pipes.
func renderRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}
