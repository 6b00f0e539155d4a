package main

import (
	"os"

	"github.com/odaklab/adaptiq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
