// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// FetchConfig holds HTTP settings used when the input document is a URL.
type FetchConfig struct {
	// Timeout is the HTTP request timeout (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "x2md/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries is the number of retries on HTTP 429 responses (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ConvertConfig holds settings for a conversion run.
type ConvertConfig struct {
	// Sheet restricts spreadsheet conversion to a single named sheet.
	// Empty converts every sheet in document order.
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty"`

	// Frontmatter controls whether a YAML frontmatter block describing the
	// conversion is prepended to the output.
	Frontmatter bool `json:"frontmatter" yaml:"frontmatter"`
}
