package main

import (
	"context"
	"os"

	"github.com/arthur-debert/envctl/internal/cli"
)

func main() {
	os.Exit(cli.Main(context.Background(), cli.DefaultApp(), os.Args[1:]))
}
