// Command rref reads a matrix and prints its reduced row echelon form.
//
// Usage:
//
//	rref reduce <rows> <cols> [--input FILE] [--format text|json]
//	rref rank <rows> <cols>
//	rref demo
package main

import (
	"os"

	"github.com/katalvlaran/rref/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
