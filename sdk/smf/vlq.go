package smf

// AppendVarLen appends the MIDI variable-length-quantity encoding of n to dst
// and returns the extended slice. The value is split into 7-bit groups,
// emitted most-significant first, with the continuation bit (0x80) set on
// every byte except the last. Zero encodes as a single 0x00 byte.
func AppendVarLen(dst []byte, n uint32) []byte {
	var buf [5]byte // ceil(32/7) groups at most
	i := len(buf) - 1
	buf[i] = byte(n & 0x7F)
	for n >>= 7; n > 0; n >>= 7 {
		i--
		buf[i] = byte(n&0x7F) | 0x80
	}
	return append(dst, buf[i:]...)
}

// EncodeVarLen returns the variable-length-quantity encoding of n.
// It is always at least one byte long.
func EncodeVarLen(n uint32) []byte {
	return AppendVarLen(nil, n)
}
