// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/pdiddy/x2md/internal/markdown"
)

// convertCSV parses data as CSV and renders it as a single pipe table. The
// first record is the header. Blank lines are skipped and ragged records are
// accepted; the renderer pads short rows to the header width. Input with no
// records yields the empty string.
func convertCSV(data []byte) (string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parsing CSV: %w", err)
	}

	return markdown.RenderTable(rows), nil
}
