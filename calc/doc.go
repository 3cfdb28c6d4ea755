// Package calc implements a stateless four-operation calculator with an
// explicit, documented policy for division by zero.
//
// 🚀 What is calc?
//
//	The arithmetic lesson of the study log as a real API:
//	  • Add, Sub, Mul on integers - single-expression, total functions
//	  • Div on floats - quotient, with the silent-zero policy: Div(a, 0)
//	    returns 0 instead of signaling an error or producing ±Inf
//	  • DivChecked - the sentinel-error variant for callers that want the
//	    failure surfaced (ErrDivideByZero) rather than swallowed
//
// ✨ Key properties:
//   - Calculator is stateless; its zero value is ready to use
//   - no operation panics; the only user-triggerable failure is
//     divide-by-zero, and only DivChecked reports it
//   - negative zero counts as zero (Div(a, -0.0) == 0)
//
// ⚙️ Usage:
//
//	import "github.com/talha-safdar/semlab/calc"
//
//	c := calc.New()
//	sum := c.Add(3, 3)            // 6
//	q := c.Div(9, 0)              // 0, silent policy
//	q, err := c.DivChecked(9, 0)  // 0, calc.ErrDivideByZero
//
// Performance: every operation is O(1) time, O(1) memory.
package calc
