package util

// Uint256Size is the size of Uint256 in bytes.
const Uint256Size = 32

// Uint256 is a 32 byte long unsigned integer, usually a hash. It's stored in
// big-endian order.
type Uint256 [Uint256Size]uint8

// BytesBE returns a big-endian byte representation of u.
func (u Uint256) BytesBE() []byte {
	return u[:]
}
