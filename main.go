package main

import (
	"os"

	"github.com/codegenio/codegenio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
