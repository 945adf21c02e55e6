package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Simplici0/carcost/internal/cli"
)

func main() {
	c := cli.NewCLI(cli.Options{Output: os.Stdout, ErrorOutput: os.Stderr})

	if err := c.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
