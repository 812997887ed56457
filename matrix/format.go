// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// render lays out a rows×cols matrix as aligned text: each row is '|', the
// elements right-aligned to the widest rendered element and joined by the
// separator, then "|\n".
//
// Implementation:
//   - Stage 1: format every element once and record the widest string.
//   - Stage 2: write rows into a strings.Builder, padding on the left.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols) for the cell strings.
func render[T Number](data []T, rows, cols int, o Options) string {
	format := cellFormat[T](o)
	withPrec := o.precision >= 0 && isFloat[T]()
	cells := make([]string, len(data))
	width := 0
	for i, v := range data {
		if withPrec {
			cells[i] = fmt.Sprintf(format, o.precision, v)
		} else {
			cells[i] = fmt.Sprintf(format, v)
		}
		width = max(width, len(cells[i]))
	}

	var b strings.Builder
	b.Grow(rows * (cols*(width+len(o.separator)) + 2))
	for i := 0; i < rows; i++ {
		b.WriteByte('|')
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(o.separator)
			}
			cell := cells[i*cols+j]
			b.WriteString(strings.Repeat(" ", width-len(cell)))
			b.WriteString(cell)
		}
		b.WriteString("|\n")
	}

	return b.String()
}

// cellFormat picks the fmt directive for one element of type T.
// Integer types ignore verb and precision.
func cellFormat[T Number](o Options) string {
	if !isFloat[T]() {
		return "%d"
	}
	if o.verb == 'v' && o.precision < 0 {
		return "%v"
	}
	verb := o.verb
	if verb == 'v' {
		verb = 'g'
	}
	if o.precision < 0 {
		return "%" + string(verb)
	}

	return "%.*" + string(verb)
}

// isFloat reports whether T is a floating-point type (1/2 truncates for integers).
func isFloat[T Number]() bool {
	one, two := T(1), T(2)

	return one/two != 0
}
