package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"

	"github.com/gamearc/lzkit/internal/app"
	"github.com/gamearc/lzkit/internal/config"
	"github.com/gamearc/lzkit/internal/logging"
)

var (
	cli     config.Cli
	version = "dev"
	meta    = config.Meta{
		ID:   "lzkit",
		Name: "lzkit",
		Desc: "Compression toolkit for reverse-engineered game container formats",
		URL:  "https://github.com/gamearc/lzkit",
	}
)

func main() {
	meta.Version = version

	kctx := kong.Parse(&cli,
		kong.Name(meta.ID),
		kong.Description(fmt.Sprintf("%s. More info: %s", meta.Desc, meta.URL)),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	logging.Configure(cli)

	if err := app.New(meta, cli).Run(kctx.Command()); err != nil {
		log.Fatal().Stack().Err(err).Send()
	}
}
