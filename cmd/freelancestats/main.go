package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jgoulah/freelancestats/internal/loader"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

// errorMessage is the line printed for a failed command
func errorMessage(err error) string {
	var le *loader.LoadError
	if errors.As(err, &le) {
		return "Spreadsheet incorrect, please try again: " + le.Error()
	}
	return "Error: " + err.Error()
}
