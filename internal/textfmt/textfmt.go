// SPDX-License-Identifier: MIT

// Package textfmt renders flat scalar buffers as human-readable text.
// It backs the String/Format debug dumps of matrix and vector; the layout
// is a convenience, not a stable interchange format.
package textfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/fixedla/scalar"
)

// Defaults (single source of truth for zero-option behavior).
const (
	// DefaultSeparator is written between two values of the same row.
	DefaultSeparator = " "

	// DefaultVerb is the fmt verb applied to every value.
	DefaultVerb = "%v"

	// DefaultRowPrefix is written before the first value of each row.
	DefaultRowPrefix = ""
)

const (
	panicSeparatorInvalid = "fixedla: WithSeparator: separator must not contain a newline"
	panicVerbInvalid      = "fixedla: WithVerb: verb must start with '%'"
	panicPrefixInvalid    = "fixedla: WithRowPrefix: prefix must not contain a newline"
)

// Options holds the resolved dump layout.
type Options struct {
	Separator string
	Verb      string
	RowPrefix string
}

// Option mutates Options. Constructors panic on nonsensical values
// (programmer error); applying an option twice is idempotent.
type Option func(*Options)

// WithSeparator sets the text between values of one row.
func WithSeparator(sep string) Option {
	if strings.ContainsAny(sep, "\r\n") {
		panic(panicSeparatorInvalid)
	}

	return func(o *Options) { o.Separator = sep }
}

// WithVerb sets the fmt verb used per value, e.g. "%.3f" or "%6d".
func WithVerb(verb string) Option {
	if !strings.HasPrefix(verb, "%") {
		panic(panicVerbInvalid)
	}

	return func(o *Options) { o.Verb = verb }
}

// WithRowPrefix sets text written before each row (e.g. indentation).
func WithRowPrefix(prefix string) Option {
	if strings.ContainsAny(prefix, "\r\n") {
		panic(panicPrefixInvalid)
	}

	return func(o *Options) { o.RowPrefix = prefix }
}

// Gather applies opts over the defaults. nil options are skipped.
func Gather(opts ...Option) Options {
	o := Options{
		Separator: DefaultSeparator,
		Verb:      DefaultVerb,
		RowPrefix: DefaultRowPrefix,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WriteRows renders data as rows of cols values each, every row terminated
// by a newline when newline is true. The text is built in memory and handed
// to w in a single Write.
// Complexity: O(len(data)).
func WriteRows[T scalar.Number](w io.Writer, data []T, cols int, newline bool, o Options) error {
	var sb strings.Builder
	Render(&sb, data, cols, newline, o)
	_, err := io.WriteString(w, sb.String())

	return err
}

// Render is WriteRows into a strings.Builder (never fails).
func Render[T scalar.Number](sb *strings.Builder, data []T, cols int, newline bool, o Options) {
	if cols <= 0 {
		return
	}
	for i, v := range data {
		if i%cols == 0 {
			sb.WriteString(o.RowPrefix)
		} else {
			sb.WriteString(o.Separator)
		}
		fmt.Fprintf(sb, o.Verb, v)
		if newline && (i+1)%cols == 0 {
			sb.WriteByte('\n')
		}
	}
}
