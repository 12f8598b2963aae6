// SPDX-License-Identifier: MIT

// Command sparsemat adds, subtracts and multiplies integer sparse matrices
// stored in the rows=/cols= text format or as YAML snapshots.
package main

import (
	"os"

	"github.com/katalvlaran/sparsemat/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
