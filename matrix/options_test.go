// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/matrix"
)

// TestDefaultOptions_Documented verifies that NewOptions() equals the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()
	assert.Equal(t, matrix.DefaultPrecision, o.Precision())
	assert.Equal(t, rune(matrix.DefaultVerb), o.Verb())
	assert.Equal(t, matrix.DefaultSeparator, o.Separator())
}

// TestNewOptions_LastWriterWins ensures setters apply in order.
func TestNewOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewOptions(matrix.WithPrecision(3), matrix.WithPrecision(1), matrix.WithVerb('e'), matrix.WithSeparator(","))
	assert.Equal(t, 1, o.Precision())
	assert.Equal(t, 'e', o.Verb())
	assert.Equal(t, ",", o.Separator())
}

// TestOptions_PanicsOnInvalid checks that constructors reject nonsensical values.
func TestOptions_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { matrix.WithPrecision(-2) })
	assert.Panics(t, func() { matrix.WithVerb('x') })
	assert.Panics(t, func() { matrix.WithVerb('d') })
	assert.NotPanics(t, func() { matrix.WithPrecision(-1) })
}

func TestString(t *testing.T) {
	require.Equal(t, "|1 2|\n|3 4|\n|5 6|\n", seq3x2[float64]().String())

	aligned := matrix.New2x2([4]int{1, -2, 10, 4})
	assert.Equal(t, "| 1 -2|\n|10  4|\n", aligned.String())

	assert.Equal(t, "|0.5|\n|1.5|\n", matrix.New2x1([2]float32{0.5, 1.5}).String())
	assert.Equal(t, "|+Inf  NaN|\n", matrix.New1x2([2]float64{math.Inf(1), math.NaN()}).String())
}

func TestText(t *testing.T) {
	m := matrix.New1x2([2]float64{1, 2.5})

	assert.Equal(t, m.String(), m.Text())
	assert.Equal(t, "|1.00 2.50|\n", m.Text(matrix.WithVerb('f'), matrix.WithPrecision(2)))
	assert.Equal(t, "|1.0e+00 2.5e+00|\n", m.Text(matrix.WithVerb('e'), matrix.WithPrecision(1)))
	assert.Equal(t, "|  1 2.5|\n", m.Text(matrix.WithPrecision(2)))
	assert.Equal(t, "|  1, 2.5|\n", m.Text(matrix.WithSeparator(", ")))

	// Integers ignore float formatting.
	i := matrix.New1x2([2]int{3, 42})
	assert.Equal(t, "| 3 42|\n", i.Text(matrix.WithVerb('f'), matrix.WithPrecision(4)))
}
