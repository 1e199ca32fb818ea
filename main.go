package main

import (
	"os"

	"github.com/pathprep/pathprep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
