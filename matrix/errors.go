// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Shape errors of the fixed-shape API are compile errors; the sentinels below
// cover the few runtime boundaries (slice ingestion, checked inversion and
// shape-erased Grid destinations). Tests MUST check them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// Operation name constants for unified error wrapping.
const (
	opFromSlice = "FromSlice"
	opInverse   = "Inverse"
	opCopy      = "Copy"
)

var (
	// ErrDimensionMismatch indicates that a runtime-shaped operand (slice, Grid)
	// does not match the shape required by the call.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned by CheckedInverse when elimination could not
	// reduce the left block of the augmented matrix to the identity.
	ErrSingular = errors.New("matrix: singular matrix")
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf reports an expected vs. actual shape under ErrDimensionMismatch.
func shapeErrorf(tag string, wantR, wantC, gotR, gotC int) error {
	return matrixErrorf(tag, fmt.Errorf("want %dx%d, got %dx%d: %w", wantR, wantC, gotR, gotC, ErrDimensionMismatch))
}
