// SPDX-License-Identifier: MIT
// Package calc: the Calculator type and its four operations.
// Div keeps the silent-zero contract; DivChecked is the errors.Is-friendly
// variant. No operation stores state or panics.

package calc

import "errors"

// ErrDivideByZero indicates a zero divisor passed to DivChecked.
// Div never returns it; the silent-zero policy stands there.
var ErrDivideByZero = errors.New("calc: division by zero")

// Calculator performs the four basic arithmetic operations.
//
// It is stateless: the zero value is ready to use, every method is a pure
// function of its arguments, and copies are interchangeable.
type Calculator struct{}

// New returns a ready-to-use Calculator.
// Equivalent to the zero value; provided for construction symmetry.
// Complexity: O(1)
func New() Calculator {
	return Calculator{}
}

// Add returns a + b.
// Complexity: O(1)
func (Calculator) Add(a, b int) int {
	return a + b
}

// Sub returns a - b.
// Complexity: O(1)
func (Calculator) Sub(a, b int) int {
	return a - b
}

// Mul returns a * b.
// Complexity: O(1)
func (Calculator) Mul(a, b int) int {
	return a * b
}

// Div returns a / b, or 0 when b is zero.
//
// The silent-zero policy is deliberate: division by zero is not an error
// here and never produces ±Inf or a panic. Callers that need the failure
// reported should use DivChecked.
//
// Note: -0.0 compares equal to zero, so Div(a, -0.0) == 0. A NaN divisor
// is not zero; the quotient then follows IEEE-754 (NaN).
// Complexity: O(1)
func (Calculator) Div(a, b float64) float64 {
	if b == 0 {
		return 0
	}

	return a / b
}

// DivChecked returns a / b, or (0, ErrDivideByZero) when b is zero.
//
// Same quotient as Div for every non-zero divisor; the only difference is
// that the zero-divisor case is surfaced as a sentinel error instead of
// being folded into the result.
// Complexity: O(1)
func (Calculator) DivChecked(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}

	return a / b, nil
}
