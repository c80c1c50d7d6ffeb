package keys

import (
	"encoding/hex"
	"fmt"

	"github.com/nspcc-dev/base58codec/pkg/encoding/base58"
)

const (
	// WIFVersion is the version used to decode and encode WIF keys.
	WIFVersion = 0x80
	// PrivateKeySize is the length of a raw private key in bytes.
	PrivateKeySize = 32

	compressedFlag = 0x01
)

// WIF represents a wallet import format.
type WIF struct {
	// Version of the wallet import format. Default to 0x80.
	Version byte

	// Bool to determine if the WIF is compressed or not.
	Compressed bool

	// A reference to the raw private key bytes.
	PrivateKey []byte

	// The string representation of the WIF.
	S string
}

// WIFEncode encodes the given private key into a WIF string.
func WIFEncode(key []byte, version byte, compressed bool) (s string, err error) {
	if version == 0x00 {
		version = WIFVersion
	}
	if len(key) != PrivateKeySize {
		return s, fmt.Errorf("invalid private key length: %d", len(key))
	}

	payload := make([]byte, 0, PrivateKeySize+1)
	payload = append(payload, key...)
	if compressed {
		payload = append(payload, compressedFlag)
	}

	s = base58.CheckEncode(payload, version)
	return
}

// WIFDecode decodes the given WIF string into a WIF struct.
func WIFDecode(wif string, version byte) (*WIF, error) {
	b, v, err := base58.CheckDecode(wif)
	if err != nil {
		return nil, err
	}

	if version == 0x00 {
		version = WIFVersion
	}
	w := &WIF{
		Version: version,
		S:       wif,
	}
	switch len(b) {
	case PrivateKeySize: // OK, uncompressed public key.
	case PrivateKeySize + 1: // OK, compressed public key.
		// Check the compression flag.
		if b[PrivateKeySize] != compressedFlag {
			return nil, fmt.Errorf("invalid compression flag %d expecting %d", b[PrivateKeySize], compressedFlag)
		}
		w.Compressed = true
	default:
		return nil, fmt.Errorf("invalid WIF length %d, expecting %d or %d", len(b)+1, PrivateKeySize+1, PrivateKeySize+2)
	}

	if v != version {
		return nil, &base58.VersionMismatchError{Expected: version, Actual: v}
	}

	w.PrivateKey = b[:PrivateKeySize]
	return w, nil
}

// String returns the hex representation of the private key.
func (w *WIF) String() string {
	return hex.EncodeToString(w.PrivateKey)
}
