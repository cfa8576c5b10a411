// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/fixedla/internal/textfmt"
)

// String implements fmt.Stringer: one line per row, values separated by a
// single space. The layout is a debugging aid, not a stable format.
func (m *Matrix[T, R, C]) String() string {
	var sb strings.Builder
	textfmt.Render(&sb, m.view(), m.Cols(), true, textfmt.Gather())

	return sb.String()
}

// Format writes the dump of m to w, one newline-terminated line per row.
// Errors from w are returned wrapped.
func (m *Matrix[T, R, C]) Format(w io.Writer, opts ...FormatOption) error {
	if err := textfmt.WriteRows(w, m.view(), m.Cols(), true, textfmt.Gather(opts...)); err != nil {
		return fmt.Errorf("Matrix.Format: %w", err)
	}

	return nil
}
