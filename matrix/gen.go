// SPDX-License-Identifier: MIT

//go:build ignore

// gen writes shapes_gen.go: one concrete matrix type per (rows, cols) pair in
// [1, maxDim]² together with every shape-dependent function and method.
//
// Usage (from this directory):
//
//	go generate
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
)

const (
	maxDim  = 5
	outFile = "shapes_gen.go"
)

// gen accumulates the generated source.
type gen struct{ bytes.Buffer }

func (g *gen) p(format string, args ...any) {
	fmt.Fprintf(&g.Buffer, format, args...)
	g.WriteByte('\n')
}

func typeName(r, c int) string { return fmt.Sprintf("Mat%dx%d", r, c) }

func main() {
	log.SetFlags(0)
	log.SetPrefix("gen: ")

	var g gen
	g.p("// Code generated by gen.go; DO NOT EDIT.")
	g.p("")
	g.p("package matrix")
	for r := 1; r <= maxDim; r++ {
		for c := 1; c <= maxDim; c++ {
			g.shape(r, c)
		}
	}

	src, err := format.Source(g.Bytes())
	if err != nil {
		log.Fatalf("format: %v", err)
	}
	if err = os.WriteFile(outFile, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", outFile, err)
	}
}

func (g *gen) shape(r, c int) {
	n := r * c
	m := typeName(r, c)
	sfx := fmt.Sprintf("%dx%d", r, c)

	g.p("")
	g.p("// %s is a %d×%d matrix stored in row-major order:", m, r, c)
	g.p("// element (r, c) lives at Data[r*%d+c].", c)
	g.p("type %s[T Number] struct {", m)
	g.p("\t_    noCompare")
	g.p("\tData [%d]T", n)
	g.p("}")

	// Construction.
	g.p("")
	g.p("// New%s builds a %s from a row-major element sequence.", sfx, m)
	g.p("func New%s[T Number](data [%d]T) %s[T] { return %s[T]{Data: data} }", sfx, n, m, m)
	g.p("")
	g.p("// Zero%s returns the %d×%d zero matrix.", sfx, r, c)
	g.p("func Zero%s[T Number]() %s[T] { return %s[T]{} }", sfx, m, m)
	if r == c {
		g.p("")
		g.p("// Identity%d returns the %d×%d identity matrix.", r, r, r)
		g.p("func Identity%d[T Number]() %s[T] {", r, m)
		g.p("\tvar m %s[T]", m)
		g.p("\tfor i := 0; i < %d; i++ {", r)
		g.p("\t\tm.Data[i*%d] = 1", r+1)
		g.p("\t}")
		g.p("")
		g.p("\treturn m")
		g.p("}")
	}
	g.p("")
	g.p("// FromColumns%s builds a %s whose j-th column is cols[j].", sfx, m)
	g.p("func FromColumns%s[T Number](cols [%d]%s[T]) %s[T] {", sfx, c, typeName(r, 1), m)
	g.p("\tvar m %s[T]", m)
	g.p("\tfor j := range cols {")
	g.p("\t\tfor i := 0; i < %d; i++ {", r)
	g.p("\t\t\tm.Data[i*%d+j] = cols[j].Data[i]", c)
	g.p("\t\t}")
	g.p("\t}")
	g.p("")
	g.p("\treturn m")
	g.p("}")
	g.p("")
	g.p("// Convert%s converts every element of m to U.", sfx)
	g.p("func Convert%s[U, T Number](m %s[T]) %s[U] {", sfx, m, m)
	g.p("\tvar out %s[U]", m)
	g.p("\tfor i, v := range m.Data {")
	g.p("\t\tout.Data[i] = U(v)")
	g.p("\t}")
	g.p("")
	g.p("\treturn out")
	g.p("}")
	g.p("")
	g.p("// FromSlice%s copies a row-major slice of exactly %d elements into a %s.", sfx, n, m)
	g.p("func FromSlice%s[T Number](s []T) (%s[T], error) {", sfx, m)
	g.p("\tvar m %s[T]", m)
	g.p("\tif err := fillFromSlice(m.Data[:], s); err != nil {")
	g.p("\t\treturn %s[T]{}, err", m)
	g.p("\t}")
	g.p("")
	g.p("\treturn m, nil")
	g.p("}")

	// Access and views.
	g.p("")
	g.p("// Dims returns the shape of m.")
	g.p("func (%s[T]) Dims() (rows, cols int) { return %d, %d }", m, r, c)
	g.p("")
	g.p("// At returns the element at (r, c).")
	g.p("func (m %s[T]) At(r, c int) T { return m.Data[offset(r, c, %d, %d)] }", m, r, c)
	g.p("")
	g.p("// Set assigns v at (r, c).")
	g.p("func (m *%s[T]) Set(r, c int, v T) { m.Data[offset(r, c, %d, %d)] = v }", m, r, c)
	g.p("")
	g.p("// Raw exposes the backing storage of m in row-major order.")
	g.p("func (m *%s[T]) Raw() []T { return m.Data[:] }", m)
	g.p("")
	g.p("// RowOf returns the row of flat index i.")
	g.p("func (%s[T]) RowOf(i int) int { return i / %d }", m, c)
	g.p("")
	g.p("// ColOf returns the column of flat index i.")
	g.p("func (%s[T]) ColOf(i int) int { return i %% %d }", m, c)
	g.p("")
	g.p("// Fill sets every element of m to v.")
	g.p("func (m *%s[T]) Fill(v T) { fill(m.Data[:], v) }", m)
	g.p("")
	g.p("// Row returns a copy of row r.")
	g.p("func (m %s[T]) Row(r int) %s[T] {", m, typeName(1, c))
	g.p("\tvar out %s[T]", typeName(1, c))
	g.p("\tcopy(out.Data[:], m.Data[offset(r, 0, %d, %d):])", r, c)
	g.p("")
	g.p("\treturn out")
	g.p("}")
	g.p("")
	g.p("// Column returns a copy of column c.")
	g.p("func (m %s[T]) Column(c int) %s[T] {", m, typeName(r, 1))
	g.p("\tvar out %s[T]", typeName(r, 1))
	g.p("\tfor i := range out.Data {")
	g.p("\t\tout.Data[i] = m.Data[offset(i, c, %d, %d)]", r, c)
	g.p("\t}")
	g.p("")
	g.p("\treturn out")
	g.p("}")
	g.p("")
	g.p("// Transposed returns the %d×%d transpose of m.", c, r)
	g.p("func (m %s[T]) Transposed() %s[T] {", m, typeName(c, r))
	g.p("\tvar out %s[T]", typeName(c, r))
	g.p("\ttransposeInto(out.Data[:], m.Data[:], %d, %d)", r, c)
	g.p("")
	g.p("\treturn out")
	g.p("}")
	for r2 := 1; r2 <= r; r2++ {
		for c2 := 1; c2 <= c; c2++ {
			g.p("")
			g.p("// Submatrix%dx%d returns a copy of the top-left %d×%d block of m.", r2, c2, r2, c2)
			g.p("func (m %s[T]) Submatrix%dx%d() %s[T] {", m, r2, c2, typeName(r2, c2))
			g.p("\tvar out %s[T]", typeName(r2, c2))
			g.p("\tcopyBlock(out.Data[:], %d, m.Data[:], %d, %d, %d)", c2, c, r2, c2)
			g.p("")
			g.p("\treturn out")
			g.p("}")
		}
	}
	g.p("")
	g.p("// ResizeInto zero-fills dst and copies the overlapping top-left block of m into it.")
	g.p("func (m %s[T]) ResizeInto(dst Grid[T]) { resizeInto(dst, m.Data[:], %d, %d) }", m, r, c)

	// Arithmetic.
	for _, op := range []struct{ name, doc, kernel string }{
		{"Add", "m + o", "addInto"},
		{"Sub", "m - o", "subInto"},
	} {
		g.p("")
		g.p("// %s returns %s.", op.name, op.doc)
		g.p("func (m %s[T]) %s(o %s[T]) %s[T] {", m, op.name, m, m)
		g.p("\t%s(m.Data[:], o.Data[:])", op.kernel)
		g.p("")
		g.p("\treturn m")
		g.p("}")
		g.p("")
		g.p("// %sInPlace sets m to %s.", op.name, op.doc)
		g.p("func (m *%s[T]) %sInPlace(o %s[T]) { %s(m.Data[:], o.Data[:]) }", m, op.name, m, op.kernel)
	}
	g.p("")
	g.p("// Neg returns -m.")
	g.p("func (m %s[T]) Neg() %s[T] {", m, m)
	g.p("\tnegInto(m.Data[:])")
	g.p("")
	g.p("\treturn m")
	g.p("}")
	for _, op := range []struct{ name, doc, kernel string }{
		{"Scale", "m * s", "scaleInto"},
		{"Div", "m / s", "divInto"},
	} {
		g.p("")
		g.p("// %s returns %s.", op.name, op.doc)
		g.p("func (m %s[T]) %s(s T) %s[T] {", m, op.name, m)
		g.p("\t%s(m.Data[:], s)", op.kernel)
		g.p("")
		g.p("\treturn m")
		g.p("}")
		g.p("")
		g.p("// %sInPlace sets m to %s.", op.name, op.doc)
		g.p("func (m *%s[T]) %sInPlace(s T) { %s(m.Data[:], s) }", m, op.name, op.kernel)
	}
	for k := 1; k <= maxDim; k++ {
		g.p("")
		g.p("// Mul%dx%d returns the %d×%d matrix product of m and o.", c, k, r, k)
		g.p("func (m %s[T]) Mul%dx%d(o %s[T]) %s[T] {", m, c, k, typeName(c, k), typeName(r, k))
		g.p("\tvar out %s[T]", typeName(r, k))
		g.p("\tmulInto(out.Data[:], m.Data[:], o.Data[:], %d, %d, %d)", r, c, k)
		g.p("")
		g.p("\treturn out")
		g.p("}")
	}
	g.p("")
	g.p("// AllClose reports whether every element of m is within tol of the matching element of o.")
	g.p("func (m %s[T]) AllClose(o %s[T], tol float64) bool { return allClose(m.Data[:], o.Data[:], tol) }", m, m)
	g.p("")
	g.p("// Gauss reduces m in place by Gauss-Jordan elimination.")
	g.p("func (m *%s[T]) Gauss() { gaussJordan(m.Data[:], %d, %d) }", m, r, c)
	g.p("")
	g.p("// String renders m as aligned rows.")
	g.p("func (m %s[T]) String() string { return render(m.Data[:], %d, %d, gatherOptions()) }", m, r, c)
	g.p("")
	g.p("// Text renders m like String with formatting options applied.")
	g.p("func (m %s[T]) Text(opts ...Option) string { return render(m.Data[:], %d, %d, gatherOptions(opts...)) }", m, r, c)

	if r == c {
		g.square(m, r)
	}
	if c == 1 {
		g.column(m, r)
	}
}

func (g *gen) square(m string, n int) {
	g.p("")
	g.p("// Trace returns the sum of the diagonal of m.")
	g.p("func (m %s[T]) Trace() float64 { return trace(m.Data[:], %d) }", m, n)
	g.p("")
	g.p("// Inverse returns the inverse of m computed by Gauss-Jordan elimination.")
	g.p("// A singular m yields a meaningless result; use CheckedInverse to detect it.")
	g.p("func (m %s[T]) Inverse() %s[T] {", m, m)
	g.p("\tvar aug [%d]T", 2*n*n)
	g.p("\tinvertInto(m.Data[:], m.Data[:], aug[:], %d)", n)
	g.p("")
	g.p("\treturn m")
	g.p("}")
	g.p("")
	g.p("// CheckedInverse is Inverse that reports ErrSingular when m is singular or too")
	g.p("// close to it for the elimination: the left block did not reduce to the identity,")
	g.p("// or m times the result differs from the identity by more than 1e-8 (float64),")
	g.p("// 1e-3 (float32) or at all (integers) in some element.")
	g.p("func (m %s[T]) CheckedInverse() (%s[T], error) {", m, m)
	g.p("\tvar aug [%d]T", 2*n*n)
	g.p("\tinv := m")
	g.p("\tif !invertInto(inv.Data[:], m.Data[:], aug[:], %d) || !invertible(m.Data[:], inv.Data[:], aug[:], %d) {", n, n)
	g.p("\t\treturn %s[T]{}, matrixErrorf(opInverse, ErrSingular)", m)
	g.p("\t}")
	g.p("")
	g.p("\treturn inv, nil")
	g.p("}")
}

func (g *gen) column(m string, n int) {
	g.p("")
	g.p("// Dot returns the dot product of m and o.")
	g.p("func (m %s[T]) Dot(o %s[T]) T { return dot(m.Data[:], o.Data[:]) }", m, m)
	g.p("")
	g.p("// MagnitudeSqr returns the squared Euclidean length of m.")
	g.p("func (m %s[T]) MagnitudeSqr() T { return dot(m.Data[:], m.Data[:]) }", m)
	g.p("")
	g.p("// Magnitude returns the Euclidean length of m.")
	g.p("func (m %s[T]) Magnitude() float64 { return magnitude(m.Data[:]) }", m)
	g.p("")
	g.p("// Normalized returns m scaled to unit length. m must not be zero.")
	g.p("func (m %s[T]) Normalized() %s[T] {", m, m)
	g.p("\tm.Normalize()")
	g.p("")
	g.p("\treturn m")
	g.p("}")
	g.p("")
	g.p("// Normalize scales m to unit length in place. m must not be zero.")
	g.p("func (m *%s[T]) Normalize() { divInto(m.Data[:], T(magnitude(m.Data[:]))) }", m)
	g.p("")
	g.p("// SetMagnitude rescales m to length mag. m must not be zero.")
	g.p("func (m *%s[T]) SetMagnitude(mag float64) { setMagnitude(m.Data[:], mag) }", m)
	g.p("")
	g.p("// ClampMagnitude shortens m to length mag when it is longer.")
	g.p("func (m *%s[T]) ClampMagnitude(mag float64) { clampMagnitude(m.Data[:], mag) }", m)
	g.p("")
	g.p("// Max returns the largest element of m.")
	g.p("func (m %s[T]) Max() T { return maxOf(m.Data[:]) }", m)
	g.p("")
	g.p("// SetMax rescales m so that its largest element becomes v. Max must not be zero.")
	g.p("func (m *%s[T]) SetMax(v T) { scaleInto(m.Data[:], v/maxOf(m.Data[:])) }", m)
	g.p("")
	g.p("// IsZero reports whether every element of m is zero.")
	g.p("func (m %s[T]) IsZero() bool { return isZero(m.Data[:]) }", m)
	g.p("")
	g.p("// Equal reports whether m and o hold identical elements.")
	g.p("func (m %s[T]) Equal(o %s[T]) bool { return m.Data == o.Data }", m, m)
	g.p("")
	g.p("// Lerp returns m + (to-m)*t.")
	g.p("func (m %s[T]) Lerp(to %s[T], t float64) %s[T] {", m, m, m)
	g.p("\tlerpInto(m.Data[:], to.Data[:], t)")
	g.p("")
	g.p("\treturn m")
	g.p("}")
	g.p("")
	g.p("// AngleBetween returns the angle between m and o in radians.")
	g.p("func (m %s[T]) AngleBetween(o %s[T]) float64 { return angleBetween(m.Data[:], o.Data[:]) }", m, m)
	g.p("")
	g.p("// AngleBetweenCos returns the cosine of the angle between m and o, or 0 when either is zero.")
	g.p("func (m %s[T]) AngleBetweenCos(o %s[T]) float64 { return angleCos(m.Data[:], o.Data[:]) }", m, m)
	g.p("")
	g.p("// ProjectionLength returns the signed length of m projected on on. on must not be zero.")
	g.p("func (m %s[T]) ProjectionLength(on %s[T]) float64 { return projectionLength(m.Data[:], on.Data[:]) }", m, m)
	g.p("")
	g.p("// Projection returns the projection of m on on. on must not be zero.")
	g.p("func (m %s[T]) Projection(on %s[T]) %s[T] {", m, m, m)
	g.p("\tprojectOnto(on.Data[:], m.Data[:])")
	g.p("")
	g.p("\treturn on")
	g.p("}")
	g.p("")
	g.p("// ProjectionOnPlane returns the component of m orthogonal to normal. normal must not be zero.")
	g.p("func (m %s[T]) ProjectionOnPlane(normal %s[T]) %s[T] {", m, m, m)
	g.p("\trejectFrom(m.Data[:], normal.Data[:])")
	g.p("")
	g.p("\treturn m")
	g.p("}")
	if n < maxDim {
		ext := typeName(n+1, 1)
		g.p("")
		g.p("// Extend returns m with last appended as element %d.", n)
		g.p("func (m %s[T]) Extend(last T) %s[T] {", m, ext)
		g.p("\tvar out %s[T]", ext)
		g.p("\tcopy(out.Data[:], m.Data[:])")
		g.p("\tout.Data[%d] = last", n)
		g.p("")
		g.p("\treturn out")
		g.p("}")
	}
}
