// Package record implements the bidirectional codec between numeric feature
// vectors and named, human-readable model record entries.
//
// The Encoder turns one coefficient vector plus an index→identity directory
// into an ordered entry sequence: near-zero coefficients are filtered by a
// significance threshold and the survivors are written magnitude-descending,
// so the strongest features lead the persisted record. The Decoder performs
// the inverse, rebuilding a dense vector from entries while tolerating
// identities the current feature directory no longer knows.
//
// Both operations are pure, synchronous transformations over immutable inputs
// and are safe to run concurrently over disjoint inputs without coordination.
package record
