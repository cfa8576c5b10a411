// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the debug dump.
//   - FormatOption constructors validate eagerly and panic on nonsensical
//     values (programmer error), like every option in this module.
//   - Defaults are documented constants; Format with no options equals String.
package matrix

import "github.com/katalvlaran/fixedla/internal/textfmt"

// Dump defaults (single source of truth).
const (
	DefaultSeparator = textfmt.DefaultSeparator
	DefaultVerb      = textfmt.DefaultVerb
	DefaultRowPrefix = textfmt.DefaultRowPrefix
)

// FormatOption configures Format.
type FormatOption = textfmt.Option

// WithSeparator sets the text between two values of a row.
// Panics if sep contains a line break.
func WithSeparator(sep string) FormatOption { return textfmt.WithSeparator(sep) }

// WithVerb sets the fmt verb applied to each value, e.g. "%.3f" or "%4d".
// Panics unless verb starts with '%'.
func WithVerb(verb string) FormatOption { return textfmt.WithVerb(verb) }

// WithRowPrefix sets text written at the start of every row.
// Panics if prefix contains a line break.
func WithRowPrefix(prefix string) FormatOption { return textfmt.WithRowPrefix(prefix) }
