// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/x2md/pkg/types"
)

// WithFrontmatter prepends a YAML frontmatter block describing the
// conversion to body. A zero ConvertedAt defaults to the current UTC time.
func WithFrontmatter(meta types.DocumentMeta, body string) (string, error) {
	if meta.ConvertedAt.IsZero() {
		meta.ConvertedAt = time.Now().UTC()
	}

	encoded, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("encoding frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(encoded)
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String(), nil
}
