package main

import (
	"os"

	"gitvend/cmd/gitvend/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
