package calc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talha-safdar/semlab/calc"
)

// TestCalculator_IntegerOps verifies Add, Sub and Mul against their
// defining identities on a spread of positive, negative and zero operands.
func TestCalculator_IntegerOps(t *testing.T) {
	c := calc.New()

	cases := []struct{ a, b int }{
		{0, 0},
		{1, 2},
		{-4, 9},
		{7, -7},
		{-3, -5},
		{1 << 20, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.a+tc.b, c.Add(tc.a, tc.b), "Add(%d,%d)", tc.a, tc.b)
		assert.Equal(t, tc.a-tc.b, c.Sub(tc.a, tc.b), "Sub(%d,%d)", tc.a, tc.b)
		assert.Equal(t, tc.a*tc.b, c.Mul(tc.a, tc.b), "Mul(%d,%d)", tc.a, tc.b)
	}
}

// TestCalculator_DivNonZero verifies the plain quotient for non-zero divisors.
func TestCalculator_DivNonZero(t *testing.T) {
	c := calc.New()

	assert.Equal(t, 3.0, c.Div(9, 3), "Div(9,3) must be the exact quotient")
	assert.Equal(t, -2.5, c.Div(5, -2), "negative divisor keeps IEEE quotient")
	assert.InDelta(t, 1.0/3.0, c.Div(1, 3), 1e-15, "non-terminating quotient")
}

// TestCalculator_DivByZero locks in the silent-zero policy: a zero divisor
// yields 0, never ±Inf, never a panic.
func TestCalculator_DivByZero(t *testing.T) {
	c := calc.New()

	assert.Equal(t, 0.0, c.Div(9, 0), "Div(9,0) must be 0 by policy")
	assert.Equal(t, 0.0, c.Div(-9, 0), "sign of the dividend must not leak through")
	assert.Equal(t, 0.0, c.Div(0, 0), "Div(0,0) must be 0, not NaN")
	negZero := math.Copysign(0, -1)
	assert.Equal(t, 0.0, c.Div(9, negZero), "-0.0 divisor counts as zero")
}

// TestCalculator_DivChecked verifies the sentinel-error variant: same
// quotient as Div for non-zero divisors, ErrDivideByZero otherwise.
func TestCalculator_DivChecked(t *testing.T) {
	c := calc.New()

	q, err := c.DivChecked(9, 3)
	assert.NoError(t, err, "non-zero divisor must not error")
	assert.Equal(t, 3.0, q, "DivChecked must match Div on non-zero divisors")

	q, err = c.DivChecked(9, 0)
	assert.ErrorIs(t, err, calc.ErrDivideByZero, "zero divisor must surface the sentinel")
	assert.Equal(t, 0.0, q, "result must be 0 alongside the error")
}

// TestCalculator_NaNDivisor documents that NaN is not zero: the silent-zero
// policy does not trigger and the quotient follows IEEE-754.
func TestCalculator_NaNDivisor(t *testing.T) {
	c := calc.New()

	assert.True(t, math.IsNaN(c.Div(9, math.NaN())), "NaN divisor must yield NaN, not 0")

	_, err := c.DivChecked(9, math.NaN())
	assert.NoError(t, err, "NaN divisor is not a zero divisor")
}

// TestCalculator_EndToEnd is the scenario the study log closes on.
func TestCalculator_EndToEnd(t *testing.T) {
	c := calc.New()

	assert.Equal(t, 0.0, c.Div(9.0, 0.0), "Div(9,0)")
	assert.Equal(t, 3.0, c.Div(9.0, 3.0), "Div(9,3)")
	assert.Equal(t, 6, c.Add(3, 3), "Add(3,3)")
}

// TestCalculator_ZeroValueReady confirms the zero value behaves like New().
func TestCalculator_ZeroValueReady(t *testing.T) {
	var c calc.Calculator

	assert.Equal(t, 6, c.Add(3, 3), "zero-value Calculator must be usable")
	assert.Equal(t, 0.0, c.Div(1, 0), "zero-value Calculator keeps the silent-zero policy")
}
