package main

import (
	"errors"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/chrsheet"
	"github.com/bodgit/chrsheet/sheet"
	"github.com/urfave/cli/v2"
)

const defaultDB = "chrsheet.db"

var errArgs = errors.New("expected INPUT and OUTPUT arguments")

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func run(args []string) error {
	app := cli.NewApp()

	app.Name = "chrsheet"
	app.Usage = "iNES tile graphics extraction utility"
	app.Version = "1.0.0"
	app.ArgsUsage = "INPUT OUTPUT"

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "tiles-per-row",
			Aliases: []string{"n"},
			EnvVars: []string{"CHRSHEET_TILES_PER_ROW"},
			Value:   sheet.DefaultTilesPerRow,
			Usage:   "number of tiles on each row of the sheet",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() != 2 {
			return errArgs
		}

		s, err := chrsheet.New(c.Int("tiles-per-row"), nil, newLogger(c))
		if err != nil {
			return err
		}

		_, err = s.ExtractFile(c.Args().Get(0), c.Args().Get(1))
		return err
	}

	app.Commands = []*cli.Command{
		{
			Name:        "scan",
			Usage:       "Write a sprite sheet next to every ROM in a directory tree",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "db",
					EnvVars: []string{"CHRSHEET_DB"},
					Value:   filepath.Join(cwd, defaultDB),
					Usage:   "path to catalog database",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return errors.New("expected DIRECTORY argument")
				}

				db, err := chrsheet.NewCatalog(c.String("db"))
				if err != nil {
					return err
				}
				defer db.Close()

				s, err := chrsheet.New(c.Int("tiles-per-row"), db, newLogger(c))
				if err != nil {
					return err
				}

				return s.Scan(c.Args().First())
			},
		},
		{
			Name:        "pack",
			Usage:       "Convert a sprite sheet back into raw tile data",
			Description: "",
			ArgsUsage:   "IMAGE OUTPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return errors.New("expected IMAGE and OUTPUT arguments")
				}

				return chrsheet.Pack(c.Args().Get(0), c.Args().Get(1))
			},
		},
	}

	return app.Run(args)
}

func main() {
	if err := run(os.Args); err != nil {
		log.Fatal(err)
	}
}
