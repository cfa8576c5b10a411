// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/fixedla/internal/textfmt"

// Dump defaults (single source of truth).
const (
	DefaultSeparator = textfmt.DefaultSeparator
	DefaultVerb      = textfmt.DefaultVerb
)

// FormatOption configures Format.
type FormatOption = textfmt.Option

// WithSeparator sets the text between two values.
// Panics if sep contains a line break.
func WithSeparator(sep string) FormatOption { return textfmt.WithSeparator(sep) }

// WithVerb sets the fmt verb applied to each value.
// Panics unless verb starts with '%'.
func WithVerb(verb string) FormatOption { return textfmt.WithVerb(verb) }
