package main

import (
	"os"

	"github.com/linku/linku/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
