package codec

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/nspcc-dev/base58codec/cli/flags"
	"github.com/nspcc-dev/base58codec/cli/input"
	"github.com/nspcc-dev/base58codec/cli/options"
	"github.com/nspcc-dev/base58codec/pkg/encoding/base58"
	json "github.com/nspcc-dev/go-ordered-json"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var hexFlag = cli.BoolFlag{
	Name:  "hex",
	Usage: "use hex representation for binary data",
}

// NewCommands returns codec commands.
func NewCommands() []cli.Command {
	codecFlags := append([]cli.Flag{}, options.Codec...)
	codecFlags = append(codecFlags, options.Config...)
	ioFlags := append([]cli.Flag{input.InFlag, hexFlag}, codecFlags...)
	intFlags := append([]cli.Flag{input.InFlag}, codecFlags...)
	return []cli.Command{
		{
			Name:      "encode",
			Usage:     "encode data into base58",
			UsageText: "encode [--hex] [-i <file>] [-a <alphabet>] [-c [-b <version>]] [<data>]",
			Description: `Encodes the given data (or stdin/file contents if no argument is given).
   With --hex the input is expected to be a hex string.
`,
			Action: encode,
			Flags:  ioFlags,
		},
		{
			Name:      "decode",
			Usage:     "decode base58 string",
			UsageText: "decode [--hex] [-i <file>] [-a <alphabet>] [-c [-b <version>]] [<string>]",
			Action:    decode,
			Flags:     ioFlags,
		},
		{
			Name:      "encode-int",
			Usage:     "encode a non-negative decimal integer into base58",
			UsageText: "encode-int [-a <alphabet>] <integer>",
			Action:    encodeInt,
			Flags:     intFlags,
		},
		{
			Name:      "decode-int",
			Usage:     "decode base58 string into a decimal integer",
			UsageText: "decode-int [-a <alphabet>] <string>",
			Action:    decodeInt,
			Flags:     intFlags,
		},
		{
			Name:      "inspect",
			Usage:     "decode checked base58 string and print its structure as JSON",
			UsageText: "inspect [-a <alphabet>] <string>",
			Description: `Splits the decoded string into version, payload and checksum and
   verifies the checksum. Invalid checksums are reported, but don't fail the command.
`,
			Action: inspect,
			Flags:  intFlags,
		},
		{
			Name:   "alphabets",
			Usage:  "list well-known alphabets",
			Action: listAlphabets,
		},
	}
}

// getCodec creates a codec and a logger from the command context.
func getCodec(ctx *cli.Context) (*base58.Codec, *zap.Logger, error) {
	cfg, err := options.GetConfigFromContext(ctx)
	if err != nil {
		return nil, nil, cli.NewExitError(err, 1)
	}
	log, err := options.HandleLoggingParams(ctx.Bool("debug"), cfg.ApplicationConfiguration)
	if err != nil {
		return nil, nil, cli.NewExitError(err, 1)
	}
	c, err := options.GetCodec(ctx, cfg.Codec)
	if err != nil {
		log.Debug("failed to create codec", zap.Error(err))
		return nil, nil, cli.NewExitError(err, 1)
	}
	cc := c.Config()
	log.Debug("codec created",
		zap.String("alphabet", cc.Alphabet),
		zap.Bool("check", cc.Check),
		zap.Uint8("version", cc.Version))
	return c, log, nil
}

func encode(ctx *cli.Context) error {
	c, log, err := getCodec(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	data, err := input.Read(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if ctx.Bool("hex") {
		data, err = flags.ParseHex(string(data))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
	}
	fmt.Fprintln(ctx.App.Writer, c.Encode(data))
	return nil
}

func decode(ctx *cli.Context) error {
	c, log, err := getCodec(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	s, err := readString(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	data, err := c.Decode(s)
	if err != nil {
		log.Debug("decoding failed", zap.String("input", s), zap.Error(err))
		return cli.NewExitError(err, 1)
	}
	if ctx.Bool("hex") {
		fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(data))
		return nil
	}
	_, err = ctx.App.Writer.Write(data)
	return err
}

func encodeInt(ctx *cli.Context) error {
	c, log, err := getCodec(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	s, err := readString(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		fmt.Fprintln(ctx.App.Writer, c.EncodeInteger(n))
		return nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return cli.NewExitError(fmt.Errorf("invalid integer: %q", s), 1)
	}
	res, err := c.EncodeBigInt(n)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, res)
	return nil
}

func decodeInt(ctx *cli.Context) error {
	c, log, err := getCodec(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	s, err := readString(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	n, err := c.DecodeInteger(s)
	if err == nil {
		fmt.Fprintln(ctx.App.Writer, n)
		return nil
	}
	if !errors.Is(err, base58.ErrIntegerOverflow) {
		return cli.NewExitError(err, 1)
	}
	log.Debug("integer exceeds 64 bits", zap.String("input", s))
	bn, err := c.DecodeBigInt(s)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, bn.String())
	return nil
}

type inspectResult struct {
	Version  byte   `json:"version"`
	Payload  string `json:"payload"`
	Checksum string `json:"checksum"`
	Expected string `json:"expected"`
	Valid    bool   `json:"valid"`
}

func inspect(ctx *cli.Context) error {
	c, log, err := getCodec(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	s, err := readString(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	// The frame is parsed manually, so the codec is used in plain mode.
	cfg := c.Config()
	cfg.Check = false
	plain, err := base58.New(cfg)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	raw, err := plain.Decode(s)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	f, err := base58.SplitFrame(raw)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	res := inspectResult{
		Version:  f.Version,
		Payload:  hex.EncodeToString(f.Payload),
		Checksum: hex.EncodeToString(f.Checksum[:]),
		Valid:    true,
	}
	res.Expected = res.Checksum
	var cme *base58.ChecksumMismatchError
	if err := f.Verify(); errors.As(err, &cme) {
		res.Valid = false
		res.Expected = hex.EncodeToString(cme.Expected)
	}
	b, err := json.MarshalIndent(res, "", "\t")
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, string(b))
	return nil
}

func listAlphabets(ctx *cli.Context) error {
	for _, name := range base58.AlphabetNames() {
		a, _ := base58.AlphabetByName(name)
		fmt.Fprintf(ctx.App.Writer, "%-8s %s\n", name, a)
	}
	return nil
}

func readString(ctx *cli.Context) (string, error) {
	data, err := input.Read(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
