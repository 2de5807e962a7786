package matrix_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/slae/matrix"
)

// ExampleParse reads a two-equation system (4x + y = 5, 2x + 3y = 7).
func ExampleParse() {
	sys, err := matrix.Parse(strings.NewReader("4 1 5\n2 3 7\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("unknowns:", sys.N())
	fmt.Print(sys)

	// Output:
	// unknowns: 2
	// [4, 1, 5]
	// [2, 3, 7]
}
