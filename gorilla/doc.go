// Package gorilla implements the delta-XOR codec: each value is XORed
// against the previous one, and the resulting delta is packed using a
// reused or freshly transmitted significant-bit window.
//
// Two width variants exist, Encoder32/Decoder32 for 32-bit values and
// Encoder64/Decoder64 for 64-bit values, rather than a single generic
// implementation; the accumulator widths, leading/trailing-zero field
// widths, and bits.LeadingZeros32/64 calls genuinely differ between them.
package gorilla
