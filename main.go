package main

import (
	"os"

	"github.com/dmruiz/frdojo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
