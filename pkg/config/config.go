package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nspcc-dev/base58codec/pkg/crypto/keys"
	"github.com/nspcc-dev/base58codec/pkg/encoding/address"
	"github.com/nspcc-dev/base58codec/pkg/encoding/base58"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the default path to the config file.
const DefaultConfigPath = "./config/base58.yml"

// Version is the version of the tool, set at build time.
var Version string

// Config is the top level struct representing the config for the tool.
type Config struct {
	ApplicationConfiguration ApplicationConfiguration `yaml:"ApplicationConfiguration"`
	Codec                    base58.Config            `yaml:"Codec"`
	Address                  AddressConfiguration     `yaml:"Address"`
	WIF                      WIFConfiguration         `yaml:"WIF"`
}

// AddressConfiguration contains address encoding settings.
type AddressConfiguration struct {
	Prefix byte `yaml:"Prefix"`
}

// WIFConfiguration contains WIF encoding settings.
type WIFConfiguration struct {
	Version byte `yaml:"Version"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ApplicationConfiguration: ApplicationConfiguration{
			LogLevel: "info",
		},
		Address: AddressConfiguration{
			Prefix: address.NEO3Prefix,
		},
		WIF: WIFConfiguration{
			Version: keys.WIFVersion,
		},
	}
}

// LoadFile loads config from the provided path. Fields missing in the file
// keep their default values.
func LoadFile(configPath string) (Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config '%s' doesn't exist", configPath)
	}

	configData, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	config := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(configData))
	decoder.KnownFields(true)
	err = decoder.Decode(&config)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("config is invalid: %w", err)
	}
	return config, nil
}

// Validate checks that the configuration can be used to create a codec.
func (c Config) Validate() error {
	if _, err := base58.New(c.Codec); err != nil {
		return fmt.Errorf("codec: %w", err)
	}
	return c.ApplicationConfiguration.Validate()
}
