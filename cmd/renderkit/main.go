package main

import (
	"os"

	"renderkit/cmd/renderkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
