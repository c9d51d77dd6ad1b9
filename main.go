package main

import (
	"os"

	"github.com/openmcq/openmcq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
