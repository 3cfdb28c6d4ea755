package calc_test

import (
	"errors"
	"fmt"

	"github.com/talha-safdar/semlab/calc"
)

// ExampleCalculator demonstrates the four operations, including the
// silent-zero division policy.
func ExampleCalculator() {
	c := calc.New()

	fmt.Println(c.Add(3, 3))
	fmt.Println(c.Sub(10, 4))
	fmt.Println(c.Mul(6, 7))
	fmt.Println(c.Div(9, 3))
	fmt.Println(c.Div(9, 0)) // silent zero, by policy
	// Output:
	// 6
	// 6
	// 42
	// 3
	// 0
}

// ExampleCalculator_DivChecked shows the sentinel-error variant for callers
// that want divide-by-zero surfaced instead of swallowed.
func ExampleCalculator_DivChecked() {
	c := calc.New()

	if _, err := c.DivChecked(9, 0); errors.Is(err, calc.ErrDivideByZero) {
		fmt.Println("refused:", err)
	}
	// Output:
	// refused: calc: division by zero
}
