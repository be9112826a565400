// cmd/teaconf/main.go
package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"

	"github.com/arc-language/teaconf/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}
