// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/fixedla/internal/textfmt"
)

// String implements fmt.Stringer: the elements on one line, space separated.
func (v *Vector[T, N]) String() string {
	var sb strings.Builder
	textfmt.Render(&sb, v.view(), v.Len(), false, textfmt.Gather())

	return sb.String()
}

// Format writes the elements to w on a single line without a trailing newline.
func (v *Vector[T, N]) Format(w io.Writer, opts ...FormatOption) error {
	if err := textfmt.WriteRows(w, v.view(), v.Len(), false, textfmt.Gather(opts...)); err != nil {
		return fmt.Errorf("Vector.Format: %w", err)
	}

	return nil
}
