// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

// convertDOCX extracts the body text of a Word document: paragraphs and
// tables in document order, joined with blank lines. No structure beyond
// what the parser yields is reconstructed.
func convertDOCX(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parsing DOCX: %w", err)
	}

	var parts []string
	for _, item := range doc.Document.Body.Items {
		var text string
		switch t := item.(type) {
		case *docx.Paragraph:
			text = t.String()
		case *docx.Table:
			text = t.String()
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		parts = append(parts, text)
	}

	return strings.Join(parts, "\n\n"), nil
}
