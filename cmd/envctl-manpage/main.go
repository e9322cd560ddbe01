package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/envctl/internal/cli"
	"github.com/arthur-debert/envctl/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd(cli.DefaultApp())

	header := &doc.GenManHeader{
		Title:   "ENVCTL",
		Section: "1",
		Source:  "envctl " + version.Version,
		Manual:  "envctl manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
