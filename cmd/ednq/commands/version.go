package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v2"
)

// NewVersionCommand returns a cli.Command for "ednq version".
func NewVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Shows the ednq version",
		Action: func(c *cli.Context) error {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				_, err := fmt.Fprintln(c.App.Writer, `version not available in GOPATH mode; use "go install" with Go modules enabled`)
				return err
			}

			version := info.Main.Version
			if version == "" {
				version = "(devel)"
			}
			_, err := fmt.Fprintf(c.App.Writer, "ednq %s\n", version)
			return err
		},
	}
}
