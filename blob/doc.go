// Package blob implements the self-describing binary container for persisted
// model records.
//
// A container holds exactly one record: a model identifier, the ordered mean
// entry sequence and, optionally, the ordered variance entry sequence. The
// entry order produced by the record encoder is preserved byte-for-byte, so a
// hex dump of a container lists coefficients strongest-first.
//
// Each feature identity is stored twice: as its full (name, term) strings in
// the compressed identity payload, and as its 64-bit xxHash64 ID in the
// fixed-size index section. The decoder cross-checks the two, so corruption
// of either section is detected without a separate checksum over the strings.
//
// Containers carry their own endianness and per-payload compression choices
// in the header; a decoder needs no out-of-band configuration.
package blob
