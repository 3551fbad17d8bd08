// predict-cli queries the task time prediction service.
//
// Usage:
//
//	predict-cli predict --title "Fix bug" [--description "crash on startup"]
//	predict-cli health
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
