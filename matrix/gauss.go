// SPDX-License-Identifier: MIT

package matrix

import "math"

// gaussJordan reduces the rows×cols matrix m (row-major) in place.
//
// Implementation:
//   - Stage 1: lead = first non-zero column of the current row. An all-zero row
//     ends the elimination; later rows are left untouched.
//   - Stage 2: if lead is right of the diagonal, pick the row below whose first
//     non-zero column (searched left of lead only) is smallest, swap it in from
//     that column onward and adopt it as the new lead. Ties keep the upper row.
//   - Stage 3: normalise the pivot to exactly 1 by dividing the columns after it
//     by the old pivot value.
//   - Stage 4: eliminate the lead column from every other row:
//     row[j] -= pivot[j] * (row[lead] / pivot[lead]) for all columns.
//
// Behavior highlights:
//   - No partial pivoting by magnitude; the pivot is the first non-zero entry.
//   - Singular systems are not detected; the result is structurally valid.
//   - Works on any shape, including non-square augmented matrices.
//
// Complexity:
//   - Time O(rows²*cols), Space O(1).
func gaussJordan[T Number](m []T, rows, cols int) {
	var (
		cur, lead, o, j int
		row, other      []T
	)
	for cur = 0; cur < rows; cur++ {
		row = m[cur*cols : (cur+1)*cols]

		// Stage 1: leading column of the current row.
		lead = leadColumn(row, cols)
		if lead == cols {
			break
		}

		// Stage 2: bring a row with an earlier leading entry up.
		if lead != cur {
			minRow, minLead := cur, lead
			for o = cur + 1; o < rows; o++ {
				if l := leadColumn(m[o*cols:(o+1)*cols], minLead); l < minLead {
					minRow, minLead = o, l
				}
			}
			if minRow != cur {
				other = m[minRow*cols : (minRow+1)*cols]
				for j = minLead; j < cols; j++ {
					row[j], other[j] = other[j], row[j]
				}
				lead = minLead
			}
		}

		// Stage 3: unit pivot.
		if pivot := row[lead]; pivot != 1 {
			row[lead] = 1
			for j = lead + 1; j < cols; j++ {
				row[j] /= pivot
			}
		}

		// Stage 4: clear the lead column elsewhere.
		for o = 0; o < rows; o++ {
			if o == cur {
				continue
			}
			other = m[o*cols : (o+1)*cols]
			if other[lead] == 0 {
				continue
			}
			f := other[lead] / row[lead]
			for j = 0; j < cols; j++ {
				other[j] -= row[j] * f
			}
		}
	}
}

// leadColumn returns the first j < limit with row[j] != 0, or limit if none.
func leadColumn[T Number](row []T, limit int) int {
	for j := 0; j < limit; j++ {
		if row[j] != 0 {
			return j
		}
	}

	return limit
}

// invertInto inverts the n×n matrix src into dst using aug (len 2n²) as the
// augmented scratch [src | I]. dst may alias src.
// It reports whether the left block reduced exactly to the identity; a
// nearly singular float matrix can still pass, see invertible.
//
// Complexity:
//   - Time O(n³), Space O(1) beyond aug.
func invertInto[T Number](dst, src, aug []T, n int) bool {
	w := 2 * n
	clear(aug)
	for i := 0; i < n; i++ {
		copy(aug[i*w:i*w+n], src[i*n:(i+1)*n])
		aug[i*w+n+i] = 1
	}

	gaussJordan(aug, n, w)

	ok := true
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := T(0)
			if i == j {
				want = 1
			}
			if aug[i*w+j] != want {
				ok = false
			}
		}
		copy(dst[i*n:(i+1)*n], aug[i*w+n:(i+1)*w])
	}

	return ok
}

// narrowStep vanishes when added to 1 in float32 but not in float64.
var narrowStep = 1e-9

// residualTolerance is the largest |src·inv - I| element accepted for T:
// about the square root of the machine epsilon for floats, exact for integers.
func residualTolerance[T Number]() float64 {
	if !isFloat[T]() {
		return 0
	}
	if one := T(1); one+T(narrowStep) == one {
		return 1e-3
	}

	return 1e-8
}

// invertible reports whether src·inv is within residualTolerance of I for the
// n×n matrix src. A singular float matrix can leave a rounding residue that
// elimination takes as a pivot, reaching the identity anyway; the product
// exposes it. scratch needs n² elements.
//
// Complexity:
//   - Time O(n³), Space O(1) beyond scratch.
func invertible[T Number](src, inv, scratch []T, n int) bool {
	mulInto(scratch[:n*n], src, inv, n, n, n)

	tol := residualTolerance[T]()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			// The negated comparison also rejects NaN.
			if !(math.Abs(widen(scratch[i*n+j])-want) <= tol) {
				return false
			}
		}
	}

	return true
}
