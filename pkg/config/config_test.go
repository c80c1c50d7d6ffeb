package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/base58codec/pkg/encoding/base58"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	p := filepath.Join(t.TempDir(), "base58.yml")
	require.NoError(t, os.WriteFile(p, []byte(data), 0644))
	return p
}

func TestLoadFile(t *testing.T) {
	p := writeConfig(t, `
ApplicationConfiguration:
  LogLevel: debug
  LogPath: ./log/base58.log
Codec:
  Alphabet: flickr
  Check: true
  Version: 0x17
Address:
  Prefix: 23
`)
	cfg, err := LoadFile(p)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.ApplicationConfiguration.LogLevel)
	require.Equal(t, "./log/base58.log", cfg.ApplicationConfiguration.LogPath)
	require.Equal(t, "flickr", cfg.Codec.Alphabet)
	require.True(t, cfg.Codec.Check)
	require.Equal(t, byte(0x17), cfg.Codec.Version)
	require.Equal(t, byte(23), cfg.Address.Prefix)
	require.Equal(t, byte(0x80), cfg.WIF.Version, "default is kept")
}

func TestLoadFileEmpty(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nonexistent.yml"))
	require.Error(t, err)
}

func TestLoadFileErrors(t *testing.T) {
	for name, data := range map[string]string{
		"unknown field":  "Codec:\n  Alphabet: bitcoin\n  Checked: true\n",
		"bad yaml":       "Codec: [\n",
		"bad alphabet":   "Codec:\n  Alphabet: abcdef\n",
		"version range":  "Codec:\n  Version: 256\n",
		"bad log level":  "ApplicationConfiguration:\n  LogLevel: loud\n",
		"duplicate char": "Codec:\n  Alphabet: \"1" + base58.BitcoinAlphabet[:57] + "\"\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, data))
			require.Error(t, err)
		})
	}
}

func TestLoadFileAlphabetError(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "Codec:\n  Alphabet: abcdef\n"))
	require.ErrorIs(t, err, base58.ErrInvalidAlphabet)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, byte(0x35), cfg.Address.Prefix)
	require.Equal(t, "info", cfg.ApplicationConfiguration.LogLevel)
}

func TestLoadSampleConfig(t *testing.T) {
	cfg, err := LoadFile(filepath.Join("..", "..", DefaultConfigPath))
	require.NoError(t, err)

	def := Default()
	require.Equal(t, def.ApplicationConfiguration, cfg.ApplicationConfiguration)
	require.Equal(t, def.Address, cfg.Address)
	require.Equal(t, def.WIF, cfg.WIF)
	require.Equal(t, "bitcoin", cfg.Codec.Alphabet)
	require.False(t, cfg.Codec.Check)
}
