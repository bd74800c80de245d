// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jhillyerd/enmime"
)

// convertEML renders an RFC 5322 message as a Markdown document: the decoded
// subject as the title, the sender, a horizontal rule, then the text body
// with paragraphs normalized. For multipart messages the text/plain part is
// used.
func convertEML(data []byte) (string, error) {
	env, err := enmime.ReadEnvelope(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parsing email: %w", err)
	}

	subject := env.GetHeader("Subject")
	if subject == "" {
		subject = "No Subject"
	}
	sender := env.GetHeader("From")
	if sender == "" {
		sender = "Unknown Sender"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", subject)
	fmt.Fprintf(&b, "From: %s\n\n", sender)
	b.WriteString("---\n\n")
	b.WriteString(normalizeParagraphs(env.Text))

	return b.String(), nil
}

// normalizeParagraphs trims each blank-line-separated paragraph and rejoins
// the non-empty ones with double newlines.
func normalizeParagraphs(body string) string {
	paragraphs := paragraphSplit.Split(body, -1)

	var kept []string
	for _, p := range paragraphs {
		if t := strings.TrimSpace(p); t != "" {
			kept = append(kept, t)
		}
	}

	return strings.Join(kept, "\n\n")
}
