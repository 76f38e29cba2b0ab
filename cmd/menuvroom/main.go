package main

import (
	"fmt"
	"os"

	"menuvroom/internal/app"
)

func main() {
	if err := app.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "menuvroom: %v\n", err)
		os.Exit(1)
	}
}
