package main

import (
	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"

	"github.com/lepinkainen/squish/cmd"
	"github.com/lepinkainen/squish/types"
)

var Version = "dev"

type CLI struct {
	UI         cmd.UICmd         `cmd:"" default:"1" help:"Interactive terminal interface (default)"`
	Compress   cmd.CompressCmd   `cmd:"" help:"Compress a file with zstd"`
	Decompress cmd.DecompressCmd `cmd:"" help:"Decompress a zstd-compressed file"`

	Debug bool `help:"Enable debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	if cli.Debug {
		log.SetLevel(log.DebugLevel)
	}

	err := ctx.Run(&types.AppContext{Version: Version})
	ctx.FatalIfErrorf(err)
}
