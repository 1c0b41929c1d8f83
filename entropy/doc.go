// Package entropy implements the 256-value bit-plane batch codec: values
// are staged into batches of 256, transposed into 8-wide bit-plane slices,
// and each slice is emitted either raw (8 bits) or in an entropy-coded form
// keyed by the compile-time enumeration table in table.go.
//
// As with gorilla, two width variants exist (Encoder32/Decoder32,
// Encoder64/Decoder64) rather than one generic implementation — the number
// of bit planes (32 vs 64) and the batch element type genuinely differ.
package entropy
