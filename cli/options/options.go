/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nspcc-dev/base58codec/cli/flags"
	"github.com/nspcc-dev/base58codec/pkg/config"
	"github.com/nspcc-dev/base58codec/pkg/encoding/base58"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is a set of flags used to load the configuration and set up logging.
var Config = []cli.Flag{
	cli.StringFlag{
		Name:  "config-file",
		Usage: "path to a YAML configuration file",
	},
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: "enable debug logging (LOTS of output, overrides configuration)",
	},
}

// Codec is a set of flags used to configure the codec, they override the
// configuration file.
var Codec = []cli.Flag{
	cli.StringFlag{
		Name:  "alphabet, a",
		Usage: "alphabet name (" + alphabetNames() + ") or a string of 58 unique characters",
	},
	cli.BoolFlag{
		Name:  "check, c",
		Usage: "use checked mode (version byte and checksum)",
	},
	cli.StringFlag{
		Name:  "version-byte, b",
		Usage: "version byte for checked mode, decimal or 0x-prefixed hex",
	},
}

func alphabetNames() string {
	var s string
	for i, name := range base58.AlphabetNames() {
		if i != 0 {
			s += ", "
		}
		s += name
	}
	return s
}

// GetConfigFromContext loads the configuration file specified in the context
// or returns the default configuration if there is none.
func GetConfigFromContext(ctx *cli.Context) (config.Config, error) {
	if configFile := ctx.String("config-file"); configFile != "" {
		return config.LoadFile(configFile)
	}
	return config.Default(), nil
}

// GetCodec creates a codec from the given configuration with the codec
// flags from the context applied on top of it.
func GetCodec(ctx *cli.Context, cfg base58.Config) (*base58.Codec, error) {
	if ctx.IsSet("alphabet") {
		cfg.Alphabet = ctx.String("alphabet")
	}
	if ctx.IsSet("check") {
		cfg.Check = ctx.Bool("check")
	}
	if ctx.IsSet("version-byte") {
		v, err := flags.ParseByte(ctx.String("version-byte"))
		if err != nil {
			return nil, err
		}
		cfg.Version = v
	}
	return base58.New(cfg)
}

// HandleLoggingParams reads logging parameters.
// If a user selected debug level -- function enables it.
// If logPath is configured -- function creates a dir and a file for logging.
func HandleLoggingParams(debug bool, cfg config.ApplicationConfiguration) (*zap.Logger, error) {
	var (
		level = zapcore.InfoLevel
		err   error
	)
	if len(cfg.LogLevel) > 0 {
		level, err = zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil

	if logPath := cfg.LogPath; logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return nil, fmt.Errorf("could not create dir for logger: %w", err)
		}
		cc.OutputPaths = []string{logPath}
	}

	return cc.Build()
}
