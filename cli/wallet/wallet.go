/*
Package wallet contains commands dealing with Neo addresses and WIF keys.
*/
package wallet

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/nspcc-dev/base58codec/cli/flags"
	"github.com/nspcc-dev/base58codec/cli/input"
	"github.com/nspcc-dev/base58codec/cli/options"
	"github.com/nspcc-dev/base58codec/pkg/config"
	"github.com/nspcc-dev/base58codec/pkg/crypto/keys"
	"github.com/nspcc-dev/base58codec/pkg/encoding/address"
	"github.com/nspcc-dev/base58codec/pkg/util"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var (
	prefixFlag = cli.StringFlag{
		Name:  "prefix, p",
		Usage: "address prefix (version byte), overrides configuration",
	}
	leFlag = cli.BoolFlag{
		Name:  "le",
		Usage: "use little-endian script hash representation",
	}
	wifVersionFlag = cli.StringFlag{
		Name:  "wif-version",
		Usage: "WIF version byte, overrides configuration",
	}
)

// NewCommands returns 'address' and 'wif' commands.
func NewCommands() []cli.Command {
	addrFlags := append([]cli.Flag{prefixFlag, leFlag, input.InFlag}, options.Config...)
	wifFlags := append([]cli.Flag{wifVersionFlag, input.InFlag}, options.Config...)
	return []cli.Command{
		{
			Name:  "address",
			Usage: "convert between Neo addresses and script hashes",
			Subcommands: []cli.Command{
				{
					Name:      "from-hash",
					Usage:     "make an address from a hex-encoded script hash",
					UsageText: "from-hash [--le] [-p <prefix>] <hash>",
					Action:    fromHash,
					Flags:     addrFlags,
				},
				{
					Name:      "to-hash",
					Usage:     "extract a script hash from an address",
					UsageText: "to-hash [--le] [-p <prefix>] <address>",
					Action:    toHash,
					Flags:     addrFlags,
				},
				{
					Name:      "from-script",
					Usage:     "make an address from a hex-encoded verification script",
					UsageText: "from-script [-p <prefix>] <script>",
					Action:    fromScript,
					Flags:     addrFlags,
				},
			},
		},
		{
			Name:  "wif",
			Usage: "encode and decode private keys in wallet import format",
			Subcommands: []cli.Command{
				{
					Name:      "encode",
					Usage:     "encode a hex-encoded private key into WIF",
					UsageText: "encode [--uncompressed] [--wif-version <version>] <key>",
					Action:    wifEncode,
					Flags: append([]cli.Flag{
						cli.BoolFlag{
							Name:  "uncompressed",
							Usage: "don't append the compressed public key flag",
						},
					}, wifFlags...),
				},
				{
					Name:      "decode",
					Usage:     "decode WIF into a hex-encoded private key",
					UsageText: "decode [--wif-version <version>] <wif>",
					Action:    wifDecode,
					Flags:     wifFlags,
				},
			},
		},
	}
}

func setup(ctx *cli.Context) (config.Config, *zap.Logger, error) {
	cfg, err := options.GetConfigFromContext(ctx)
	if err != nil {
		return cfg, nil, cli.NewExitError(err, 1)
	}
	log, err := options.HandleLoggingParams(ctx.Bool("debug"), cfg.ApplicationConfiguration)
	if err != nil {
		return cfg, nil, cli.NewExitError(err, 1)
	}
	if ctx.IsSet("prefix") {
		cfg.Address.Prefix, err = flags.ParseByte(ctx.String("prefix"))
		if err != nil {
			return cfg, nil, cli.NewExitError(fmt.Errorf("invalid prefix: %w", err), 1)
		}
	}
	if ctx.IsSet("wif-version") {
		cfg.WIF.Version, err = flags.ParseByte(ctx.String("wif-version"))
		if err != nil {
			return cfg, nil, cli.NewExitError(fmt.Errorf("invalid WIF version: %w", err), 1)
		}
	}
	address.Prefix = cfg.Address.Prefix
	log.Debug("wallet settings",
		zap.Uint8("prefix", cfg.Address.Prefix),
		zap.Uint8("wif version", cfg.WIF.Version))
	return cfg, log, nil
}

func readArg(ctx *cli.Context) (string, error) {
	data, err := input.Read(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func fromHash(ctx *cli.Context) error {
	_, log, err := setup(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	s, err := readArg(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	s = strings.TrimPrefix(s, "0x")
	var u util.Uint160
	if ctx.Bool("le") {
		u, err = util.Uint160DecodeStringLE(s)
	} else {
		u, err = util.Uint160DecodeStringBE(s)
	}
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, address.Uint160ToString(u))
	return nil
}

func toHash(ctx *cli.Context) error {
	_, log, err := setup(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	s, err := readArg(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	u, err := address.StringToUint160(s)
	if err != nil {
		log.Debug("invalid address", zap.String("address", s), zap.Error(err))
		return cli.NewExitError(err, 1)
	}
	if ctx.Bool("le") {
		fmt.Fprintln(ctx.App.Writer, u.StringLE())
	} else {
		fmt.Fprintln(ctx.App.Writer, u.StringBE())
	}
	return nil
}

func fromScript(ctx *cli.Context) error {
	_, log, err := setup(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	s, err := readArg(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	script, err := flags.ParseHex(s)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, address.FromScript(script))
	return nil
}

func wifEncode(ctx *cli.Context) error {
	cfg, log, err := setup(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	s, err := readArg(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	key, err := flags.ParseHex(s)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	wif, err := keys.WIFEncode(key, cfg.WIF.Version, !ctx.Bool("uncompressed"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, wif)
	return nil
}

func wifDecode(ctx *cli.Context) error {
	cfg, log, err := setup(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	s, err := readArg(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	w, err := keys.WIFDecode(s, cfg.WIF.Version)
	if err != nil {
		log.Debug("invalid WIF", zap.Error(err))
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Key:\t%s\n", hex.EncodeToString(w.PrivateKey))
	fmt.Fprintf(ctx.App.Writer, "Version:\t0x%02x\n", w.Version)
	fmt.Fprintf(ctx.App.Writer, "Compressed:\t%t\n", w.Compressed)
	return nil
}
