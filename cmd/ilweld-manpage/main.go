package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"ilweld/internal/cli"
	"ilweld/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "ILWELD",
		Section: "1",
		Source:  "ilweld " + version.Version,
		Manual:  "ilweld manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
