package main

import (
	"os"

	"github.com/GagliardeStefano/huetest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
