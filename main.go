// The main package for the romantic-listings executable.
package main

import (
	"github.com/JakeFAU/romantic-listings/cmd"
)

// main is the entry point of the application.
// It defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
