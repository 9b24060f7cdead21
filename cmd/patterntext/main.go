package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sonemaro/patterntext/cmd/patterntext/app"
	"github.com/sonemaro/patterntext/cmd/patterntext/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		// invalid input has already been reported to the user
		if !errors.Is(err, app.ErrInvalidInput) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
