package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/chaisql/edn/tags"
)

// NewTagsCommand returns a cli.Command for "ednq tags".
func NewTagsCommand() *cli.Command {
	return &cli.Command{
		Name:  "tags",
		Usage: "List the tagged literals interpreted by the decoder",
		Action: func(c *cli.Context) error {
			for _, name := range tags.Default().Names() {
				if _, err := fmt.Fprintf(c.App.Writer, "#%s\n", name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
