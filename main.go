package main

import (
	"os"

	"github.com/lifebuddy/lifebuddy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
