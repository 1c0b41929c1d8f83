package gorilla

import (
	"io"
	"math"
	"math/bits"

	"github.com/arloliu/numcodec/bitio"
)

// Decoder32 decodes a sequence of 32-bit values previously written by
// Encoder32.
type Decoder32 struct {
	br                *bitio.Reader32
	prev              uint32
	prevLeadingZeros  int
	prevTrailingZeros int
}

// NewDecoder32 creates a decoder reading from r.
func NewDecoder32(r io.Reader) *Decoder32 {
	return &Decoder32{br: bitio.NewReader32(r)}
}

// NextUint32 decodes and returns the next value in the sequence.
func (d *Decoder32) NextUint32() (uint32, error) {
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

	var delta uint32
	if reuse == 0 {
		width := 32 - d.prevLeadingZeros - d.prevTrailingZeros
		s, err := d.br.GetBits(width)
		if err != nil {
			return 0, err
		}
		delta = uint32(s) << uint(d.prevTrailingZeros)
	} else {
		lz64, err := d.br.GetBits(lzBits32)
		if err != nil {
			return 0, err
		}
		sb64, err := d.br.GetBits(sbBits32)
		if err != nil {
			return 0, err
		}
		lz, sb := int(lz64), int(sb64)
		s, err := d.br.GetBits(sb)
		if err != nil {
			return 0, err
		}
		delta = uint32(s) << uint(32-lz-sb)
		d.prevLeadingZeros = bits.LeadingZeros32(delta)
		d.prevTrailingZeros = bits.TrailingZeros32(delta)
	}

	x := d.prev ^ delta
	d.prev = x

	return x, nil
}

// NextFloat32 decodes the next value and reinterprets its bit pattern as a
// float32.
func (d *Decoder32) NextFloat32() (float32, error) {
	v, err := d.NextUint32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}
