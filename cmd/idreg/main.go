// idreg - command-line interface for the typed identifier registry
package main

import (
	"fmt"
	"os"

	"github.com/staylorx/id-registry/pkg/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
