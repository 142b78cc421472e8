package commands

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/chaisql/edn"
	"github.com/chaisql/edn/cmd/ednq/ednutil"
)

func decodeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "output format, one of edn, json or yaml",
			Value:   ednutil.FormatEDN,
			EnvVars: []string{"EDNQ_FORMAT"},
		},
		&cli.BoolFlag{
			Name:    "indent",
			Aliases: []string{"i"},
			Usage:   "indent the output",
		},
		&cli.BoolFlag{
			Name:    "all",
			Aliases: []string{"a"},
			Usage:   "decode every top-level form of each input instead of the first one",
		},
		&cli.BoolFlag{
			Name:    "keep-going",
			Aliases: []string{"k"},
			Usage:   "decode every input even if some fail and report all the failures",
		},
		&cli.IntFlag{
			Name:    "max-input-size",
			Usage:   "maximum size of an input in bytes, 0 means no limit",
			EnvVars: []string{"EDNQ_MAX_INPUT_SIZE"},
		},
		&cli.IntFlag{
			Name:  "max-depth",
			Usage: "maximum nesting depth of collections, 0 means no limit",
		},
		&cli.BoolFlag{
			Name:  "keep-unknown-tags",
			Usage: "print tagged literals with an unknown tag as is",
		},
	}
}

// NewDecodeCommand returns a cli.Command for "ednq decode".
func NewDecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode EDN values",
		UsageText: "ednq decode [options] [file...]",
		Description: `The decode command decodes the first EDN value of each file and prints it.

Files can be compressed with gzip or zstd. If no file is given, the standard input is read:

$ curl -s http://localhost:8001/data/dev/scratch/-/ | ednq decode -f json

Every value of a file can be printed with --all:

$ ednq decode --all values.edn`,
		Flags: decodeFlags(),
		Action: func(c *cli.Context) error {
			return runDecode(c, &ednutil.Config{Shape: ednutil.ShapeValue})
		},
	}
}

// NewRowsCommand returns a cli.Command for "ednq rows".
func NewRowsCommand() *cli.Command {
	return &cli.Command{
		Name:      "rows",
		Usage:     "Decode query results",
		UsageText: "ednq rows [options] [file...]",
		Description: `The rows command decodes query results, a vector or a set of tuples,
and prints them as a vector of vectors.

$ ednq rows -f yaml result.edn`,
		Flags: decodeFlags(),
		Action: func(c *cli.Context) error {
			return runDecode(c, &ednutil.Config{Shape: ednutil.ShapeRows})
		},
	}
}

// NewTxCommand returns a cli.Command for "ednq tx".
func NewTxCommand() *cli.Command {
	return &cli.Command{
		Name:      "tx",
		Usage:     "Decode transaction reports",
		UsageText: "ednq tx [options] [file...]",
		Description: `The tx command decodes transaction reports.

One entry of the report can be selected with --key:

$ ednq tx --key tempids report.edn`,
		Flags: append(decodeFlags(), &cli.StringFlag{
			Name:  "key",
			Usage: "print only one entry of the report: db-before, db-after, tx-data or tempids",
		}),
		Action: func(c *cli.Context) error {
			return runDecode(c, &ednutil.Config{
				Shape: ednutil.ShapeTx,
				TxKey: c.String("key"),
			})
		},
	}
}

// NewDatomsCommand returns a cli.Command for "ednq datoms".
func NewDatomsCommand() *cli.Command {
	return &cli.Command{
		Name:      "datoms",
		Usage:     "Decode lists of datoms",
		UsageText: "ednq datoms [options] [file...]",
		Description: `The datoms command decodes a vector of datoms.

Datoms can also be read from their JSON representation with --json:

$ ednq datoms --json datoms.json`,
		Flags: append(decodeFlags(), &cli.BoolFlag{
			Name:  "json",
			Usage: "read datoms encoded as a JSON array of objects",
		}),
		Action: func(c *cli.Context) error {
			return runDecode(c, &ednutil.Config{
				Shape: ednutil.ShapeDatoms,
				JSON:  c.Bool("json"),
			})
		},
	}
}

func runDecode(c *cli.Context, cfg *ednutil.Config) error {
	p, err := ednutil.NewPrinter(c.App.Writer, c.String("format"), c.Bool("indent"))
	if err != nil {
		return err
	}

	cfg.All = c.Bool("all")
	cfg.KeepGoing = c.Bool("keep-going")
	cfg.Logger = newLogger(c)
	cfg.Options = edn.Options{
		MaxInputSize:    c.Int("max-input-size"),
		MaxDepth:        c.Int("max-depth"),
		KeepUnknownTags: c.Bool("keep-unknown-tags"),
	}

	inputs, err := readInputs(c)
	if err != nil {
		return err
	}

	return ednutil.Run(c.Context, cfg, inputs, p)
}

// readInputs reads the files given as arguments, or the standard input
// if there are none.
func readInputs(c *cli.Context) ([]*ednutil.Input, error) {
	if c.NArg() == 0 {
		if c.App.Reader == os.Stdin && !ednutil.CanReadFromStandardInput() {
			return nil, errors.Newf("no input, usage: %s", c.Command.UsageText)
		}
		in, err := ednutil.ReadInput("-", c.App.Reader)
		if err != nil {
			return nil, err
		}
		return []*ednutil.Input{in}, nil
	}

	inputs := make([]*ednutil.Input, 0, c.NArg())
	for _, path := range c.Args().Slice() {
		in, err := ednutil.ReadFile(path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}
