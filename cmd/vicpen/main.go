package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/vicpen/vicpen"
)

func main() {
	app := cli.NewApp()

	app.Name = "vicpen"
	app.Usage = "Actual 8 bit graphics editor"
	app.Version = "1.0.0"
	app.ArgsUsage = "[FILE ...]"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "import",
			Usage: "convert a true color image into a new document",
		},
		&cli.BoolFlag{
			Name:  "auto-colors",
			Usage: "pick the global color registers from the imported image",
		},
		&cli.StringFlag{
			Name:  "save",
			Usage: "save the last loaded document to `PATH` and exit",
		},
		&cli.StringFlag{
			Name:    "brushes",
			EnvVars: []string{"VICPEN_BRUSHES"},
			Usage:   "path to the brush library database",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		logger := log.New(ioutil.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}

		var db *vicpen.BrushDB
		if path := c.String("brushes"); path != "" {
			var err error
			if db, err = vicpen.OpenBrushDB(path); err != nil {
				return cli.NewExitError(err, 2)
			}
			defer db.Close()
		}

		editor := vicpen.New(db, logger)

		for _, filename := range c.Args().Slice() {
			if _, err := editor.Open(filename); err != nil {
				return cli.NewExitError(fmt.Sprintf("could not load file %s: %v", filename, err), 1)
			}
		}

		if filename := c.String("import"); filename != "" {
			if _, err := editor.Import(filename, c.Bool("auto-colors")); err != nil {
				return cli.NewExitError(fmt.Sprintf("could not import file %s: %v", filename, err), 1)
			}
		}

		if filename := c.String("save"); filename != "" {
			if err := editor.Save(editor.LastDocument(), filename); err != nil {
				return cli.NewExitError(fmt.Sprintf("could not save file %s: %v", filename, err), 2)
			}
			return nil
		}

		// The interactive UI would start here; without it, report what
		// was loaded.
		for _, doc := range editor.Documents() {
			m := doc.View()
			m.Refresh()
			fmt.Printf("%s: %dx%d cells, %s\n", doc.Filename, m.SizeInCells().Width, m.SizeInCells().Height, m.ImageInfo())
		}

		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
