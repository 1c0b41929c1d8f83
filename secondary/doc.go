// Package secondary provides general-purpose byte-stream compression for
// numcodec's encoded output.
//
// numcodec applies a two-stage strategy: the Gorilla/Entropy codecs exploit
// numeric structure first, and this package's algorithms squeeze general
// redundancy out of what's left (repeated byte patterns, runs the bit-level
// codecs don't target). It supports:
//
//   - None: no compression, for already-dense output
//   - Zstd: best ratio, moderate speed — cold storage of encoded batches
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio
package secondary
