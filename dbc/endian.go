package dbc

// The header stores its multi-byte integers little-endian. Reassemble them
// byte by byte instead of overlaying structs on the raw buffer, since the
// input is untrusted and layout/alignment must not matter.

func uint16le(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

func uint32le(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
