package options

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/base58codec/pkg/config"
	"github.com/nspcc-dev/base58codec/pkg/encoding/base58"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
	"go.uber.org/zap/zapcore"
)

func newContext(t *testing.T, args ...string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range append(Codec, Config...) {
		f.Apply(set)
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}

// getCodec runs GetCodec from a command action, so that flag aliases are
// handled the same way as in the real application.
func getCodec(t *testing.T, cfg base58.Config, args ...string) (*base58.Codec, error) {
	var (
		c   *base58.Codec
		err error
	)
	app := cli.NewApp()
	app.Commands = []cli.Command{{
		Name:  "test",
		Flags: Codec,
		Action: func(ctx *cli.Context) error {
			c, err = GetCodec(ctx, cfg)
			return nil
		},
	}}
	require.NoError(t, app.Run(append([]string{"base58", "test"}, args...)))
	return c, err
}

func TestGetCodec(t *testing.T) {
	c, err := getCodec(t, base58.Config{Alphabet: "flickr", Check: true, Version: 7})
	require.NoError(t, err)
	require.Equal(t, base58.FlickrAlphabet, c.Config().Alphabet)
	require.True(t, c.Config().Check)
	require.Equal(t, byte(7), c.Config().Version)

	for _, args := range [][]string{
		{"--alphabet", "ripple", "--check", "--version-byte", "0x35"},
		{"-a", "ripple", "-c", "-b", "53"},
	} {
		c, err = getCodec(t, base58.Config{}, args...)
		require.NoError(t, err)
		require.Equal(t, base58.RippleAlphabet, c.Config().Alphabet, args)
		require.True(t, c.Config().Check, args)
		require.Equal(t, byte(0x35), c.Config().Version, args)
	}

	_, err = getCodec(t, base58.Config{}, "--version-byte", "300")
	require.Error(t, err)

	_, err = getCodec(t, base58.Config{}, "-a", "short")
	require.ErrorIs(t, err, base58.ErrInvalidAlphabet)
}

func TestGetConfigFromContext(t *testing.T) {
	cfg, err := GetConfigFromContext(newContext(t))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	p := filepath.Join(t.TempDir(), "base58.yml")
	require.NoError(t, os.WriteFile(p, []byte("Codec:\n  Alphabet: gmp\n"), 0644))
	cfg, err = GetConfigFromContext(newContext(t, "--config-file", p))
	require.NoError(t, err)
	require.Equal(t, "gmp", cfg.Codec.Alphabet)

	_, err = GetConfigFromContext(newContext(t, "--config-file", p+".missing"))
	require.Error(t, err)
}

func TestHandleLoggingParams(t *testing.T) {
	d := t.TempDir()
	testLog := filepath.Join(d, "logs", "file.log")

	t.Run("logdir", func(t *testing.T) {
		cfg := config.ApplicationConfiguration{
			LogPath: testLog,
		}
		logger, err := HandleLoggingParams(false, cfg)
		require.NoError(t, err)
		require.True(t, logger.Core().Enabled(zapcore.InfoLevel))
		require.False(t, logger.Core().Enabled(zapcore.DebugLevel))
		logger.Info("test")
		_ = logger.Sync()

		_, err = os.Stat(testLog)
		require.NoError(t, err)
	})

	t.Run("default", func(t *testing.T) {
		cfg := config.ApplicationConfiguration{
			LogPath: testLog,
		}
		logger, err := HandleLoggingParams(true, cfg)
		require.NoError(t, err)
		require.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("warn", func(t *testing.T) {
		cfg := config.ApplicationConfiguration{
			LogPath:  testLog,
			LogLevel: "warn",
		}
		logger, err := HandleLoggingParams(false, cfg)
		require.NoError(t, err)
		require.True(t, logger.Core().Enabled(zapcore.WarnLevel))
		require.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("invalid", func(t *testing.T) {
		cfg := config.ApplicationConfiguration{
			LogLevel: "qwerty",
		}
		_, err := HandleLoggingParams(false, cfg)
		require.Error(t, err)
	})
}
