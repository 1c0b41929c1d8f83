package gorilla

import (
	"io"
	"math"
	"math/bits"

	"github.com/arloliu/numcodec/bitio"
)

// Decoder64 decodes a sequence of 64-bit values previously written by
// Encoder64.
type Decoder64 struct {
	br                *bitio.Reader64
	prev              uint64
	prevLeadingZeros  int
	prevTrailingZeros int
}

// NewDecoder64 creates a decoder reading from r.
func NewDecoder64(r io.Reader) *Decoder64 {
	return &Decoder64{br: bitio.NewReader64(r)}
}

// NextUint64 decodes and returns the next value in the sequence.
func (d *Decoder64) NextUint64() (uint64, error) {
	same, err := d.br.GetBits(1)
	if err != nil {
		return 0, err
	}
	if same == 0 {
		return d.prev, nil
	}

	reuse, err := d.br.GetBits(1)
	if err != nil {
		return 0, err
	}

	var delta uint64
	if reuse == 0 {
		width := 64 - d.prevLeadingZeros - d.prevTrailingZeros
		s, err := d.br.GetBits(width)
		if err != nil {
			return 0, err
		}
		delta = s << uint(d.prevTrailingZeros)
	} else {
		lz64, err := d.br.GetBits(lzBits64)
		if err != nil {
			return 0, err
		}
		sb64, err := d.br.GetBits(sbBits64)
		if err != nil {
			return 0, err
		}
		lz, sb := int(lz64), int(sb64)
		s, err := d.br.GetBits(sb)
		if err != nil {
			return 0, err
		}
		delta = s << uint(64-lz-sb)
		d.prevLeadingZeros = bits.LeadingZeros64(delta)
		d.prevTrailingZeros = bits.TrailingZeros64(delta)
	}

	x := d.prev ^ delta
	d.prev = x

	return x, nil
}

// NextFloat64 decodes the next value and reinterprets its bit pattern as a
// float64.
func (d *Decoder64) NextFloat64() (float64, error) {
	v, err := d.NextUint64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}
