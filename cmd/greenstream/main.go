package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rshade/greenstream/internal/assumptions"
	"github.com/rshade/greenstream/internal/cli"
	"github.com/rshade/greenstream/pkg/version"
)

// Exit codes.
const (
	exitOK     = 0
	exitError  = 1
	exitConfig = 2
)

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

// exitCode maps an error to the process exit status. A missing or
// malformed assumptions source exits 2.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, assumptions.ErrConfigNotFound), errors.Is(err, assumptions.ErrConfigParse):
		return exitConfig
	default:
		return exitError
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
