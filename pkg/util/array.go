package util

// copyReverse returns a reversed copy of b.
func copyReverse(b []byte) []byte {
	dst := make([]byte, len(b))
	for i, j := 0, len(b)-1; j >= 0; i, j = i+1, j-1 {
		dst[i] = b[j]
	}
	return dst
}

// reverse reverses b in place.
func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
