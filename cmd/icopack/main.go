package main

import (
	"log/slog"
	"os"

	"github.com/bodgit/icopack"
	"github.com/urfave/cli/v2"
)

const helpTemplate = `-------------------------------------------
Ico Packer
Combines icon.iconset images into a single ICO file
Iconset can contain images of sizes <= 256 pixels
Listing:
https://docs.microsoft.com/en-us/windows/win32/uxguide/vis-icons#size-requirements

Usage: {{.HelpName}} {{.ArgsUsage}}

Example:
{{.HelpName}} output.ico input.iconset
-------------------------------------------
`

func newApp(logger *slog.Logger) *cli.App {
	app := cli.NewApp()

	app.Name = "icopack"
	app.HelpName = app.Name
	app.Usage = "Combine iconset PNG images into a single ICO file"
	app.ArgsUsage = "<output_ico> <input_iconset>"
	app.Version = "1.0.0"
	app.CustomAppHelpTemplate = helpTemplate

	// Every argument is positional, even one that looks like a flag
	app.HideHelp = true
	app.HideVersion = true
	app.SkipFlagParsing = true

	app.Action = func(c *cli.Context) error {
		if c.NArg() != 2 {
			_ = cli.ShowAppHelp(c)
			return cli.Exit("", 1)
		}

		p := icopack.New(logger)

		if err := p.Pack(c.Args().Get(0), c.Args().Get(1)); err != nil {
			logger.Error("Failed to create ico", "error", err)
			return cli.Exit("", 1)
		}

		return nil
	}

	return app
}

func main() {
	// Exit codes are handled by the app itself
	if err := newApp(newLogger(os.Stderr)).Run(os.Args); err != nil {
		os.Exit(1)
	}
}
