// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DocumentMeta describes a converted document. It is rendered as YAML
// frontmatter when the caller asks for it.
type DocumentMeta struct {
	// Source is the file path or URL the document came from.
	Source string `json:"source" yaml:"source"`

	// Format is the detected input format.
	Format Format `json:"format" yaml:"format"`

	// ConvertedAt is the UTC conversion timestamp.
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}
