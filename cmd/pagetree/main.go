// Command pagetree inspects and edits pagetree document files.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		report(os.Stderr, err)
		os.Exit(1)
	}
}

// report prints err with a hint for the errors users commonly hit.
func report(w io.Writer, err error) {
	if hint := describe(err); hint != "" {
		fmt.Fprintf(w, "pagetree: %v (%s)\n", err, hint)
		return
	}
	fmt.Fprintf(w, "pagetree: %v\n", err)
}
