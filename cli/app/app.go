package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/nspcc-dev/base58codec/cli/codec"
	"github.com/nspcc-dev/base58codec/cli/wallet"
	"github.com/nspcc-dev/base58codec/pkg/config"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "base58\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates an instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "base58"
	ctl.Version = config.Version
	ctl.Usage = "Base58 encoding toolkit"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, codec.NewCommands()...)
	ctl.Commands = append(ctl.Commands, wallet.NewCommands()...)
	return ctl
}
