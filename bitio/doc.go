// Package bitio provides the sub-byte-granularity bit workspace shared by
// the gorilla and entropy codecs.
//
// A Writer accumulates bits LSB-first into a workspace of width B = 2*W bits
// (W being the codec's value width, 32 or 64) and periodically flushes whole
// bytes to an underlying io.Writer in native little-endian order. A Reader
// does the inverse, pulling bytes from an io.Reader into the same kind of
// workspace and delivering bits from the low end.
//
// Width 32 uses a single uint64 accumulator (B=64, which fits natively).
// Width 64 needs a 128-bit accumulator; see u128.go for the small hand-rolled
// two-limb integer that provides it, since Go has no native int128.
//
// Every Writer must have Finish called exactly once, which appends the
// self-delimiting end marker: a single 0 bit followed by a run of 1 bits
// that completes the final byte. A Reader detects the end of the logical
// stream by stripping this same marker off the last loaded bytes; after
// that point, GetBits returns errs.ErrEndOfStream once the caller asks for
// more bits than remain.
package bitio
