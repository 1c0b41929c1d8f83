// Package hash provides the xxHash64 helpers used for diagnostic
// fingerprinting of encoded output.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Bytes computes the xxHash64 of the given byte slice.
//
// Used by the CLI's -x diagnostic flag and by tests that need a cheap,
// order-sensitive fingerprint of a large encoded payload instead of a full
// byte-for-byte comparison (see the determinism property in spec §8.1).
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
