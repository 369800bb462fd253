package main

import (
	"os"

	"github.com/kaloritakip/kta/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
