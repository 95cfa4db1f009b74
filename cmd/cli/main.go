// fixtures - puzzle input reader
//
// fixtures loads named puzzle inputs, splits them into lines and parses each
// line into a typed value.
package main

import (
	"os"

	"github.com/ccollicutt/fixtures/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
