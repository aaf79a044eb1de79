package main

import (
	"os"

	"github.com/devcompl/gaupol/cmd/gaupol-i18n/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
