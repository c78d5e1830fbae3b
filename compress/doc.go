// Package compress provides the payload compression codecs used by the record
// container format.
//
// A persisted model record carries two independently compressed payloads: the
// feature identity strings (highly repetitive, compresses well) and the raw
// float64 coefficient values (often left uncompressed). Each payload selects
// its codec through a format.CompressionType recorded in the container header,
// so a decoder can always reconstruct the payloads without out-of-band
// configuration.
//
// Available codecs:
//   - None: pass-through, zero overhead
//   - Zstd: best ratio for identity strings (cgo and pure-Go builds)
//   - S2: fast with a moderate ratio
//   - LZ4: fastest block compression
package compress
