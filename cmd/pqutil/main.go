package main

import (
	"os"

	"github.com/msto63/pqutil/cmd/pqutil/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
