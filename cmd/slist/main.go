package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/tychoish/slist/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(afero.NewOsFs(), nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "slist:", err)
		os.Exit(1)
	}
}
