// Package section defines the fixed-layout sections of the binary record
// container: the 32-byte header, its packed flag field, and the 16-byte
// per-entry index records.
//
// Container layout:
//
//	[Header: 32 bytes]
//	[Model ID: uint16 length + UTF-8 bytes]
//	[Index entries: 16 bytes each, means first, then variances]
//	[Identity payload: concatenated name/term bytes, compressed]
//	[Value payload: raw float64 values, compressed]
//
// All multi-byte fields respect the endianness flag in the header; the flag
// byte itself is always read little-endian so a decoder can bootstrap.
package section
