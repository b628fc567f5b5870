package main

import (
	"fmt"
	"os"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/cli"
)

var version = "dev"

func main() {
	root := cli.NewRootCommand()
	cli.SetVersion(root, version)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
