package main

import (
	"github.com/alecthomas/kong"

	"github.com/padctl/padctl/internal/cmd"
	"github.com/padctl/padctl/internal/log"
)

func main() {
	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("padctl"),
		kong.Description("Configure 3-button 1-knob USB macro keypads."),
		kong.UsageOnError(),
	)

	log.Setup(cli.Verbose)
	ctx.Bind(&cli.Globals)

	ctx.FatalIfErrorf(ctx.Run())
}
