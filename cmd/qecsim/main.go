// Command qecsim runs rotated surface-code memory experiments on a stabilizer
// simulator and reports logical error rates.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
