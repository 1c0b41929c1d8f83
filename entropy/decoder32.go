package entropy

import (
	"io"
	"math"
	"math/bits"

	"github.com/arloliu/numcodec/bitio"
	"github.com/arloliu/numcodec/errs"
)

// Decoder32 decodes a sequence of 32-bit values previously written by
// Encoder32.
type Decoder32 struct {
	br            *bitio.Reader32
	batch         [256]uint32
	batchPosition int
	batchCapacity int
	counts        [planes32]int
}

// NewDecoder32 creates a decoder reading from r.
func NewDecoder32(r io.Reader) *Decoder32 {
	d := &Decoder32{br: bitio.NewReader32(r)}
	for k := range d.counts {
		d.counts[k] = 8
	}

	return d
}

// NextUint32 decodes and returns the next value in the sequence.
func (d *Decoder32) NextUint32() (uint32, error) {
	if d.batchPosition == d.batchCapacity {
		if err := d.load(); err != nil {
			return 0, err
		}
		if d.batchPosition == d.batchCapacity {
			return 0, errs.ErrEndOfStream
		}
	}

	v := d.batch[d.batchPosition]
	d.batchPosition++

	return v, nil
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

func (d *Decoder32) load() error {
	d.batchPosition = 0
	for i := range d.batch {
		d.batch[i] = 0
	}

	marker, err := d.br.GetBits(1)
	if err != nil {
		return err
	}

	if marker == 1 {
		d.batchCapacity = 256
	} else {
		cap8, err := d.br.GetBits(8)
		if err != nil {
			return err
		}
		d.batchCapacity = int(cap8)
	}

	for pos := 0; pos < d.batchCapacity; pos += 8 {
		if err := d.load8(pos); err != nil {
			return err
		}
	}

	return nil
}

func (d *Decoder32) load8(pos int) error {
	for k := 0; k < planes32; k++ {
		var number uint8
		var ones int

		if d.counts[k] > 1 {
			raw, err := d.br.GetBits(8)
			if err != nil {
				return err
			}
			number = uint8(raw)
			ones = bits.OnesCount8(number)
		} else {
			first, err := d.br.GetBits(1)
			if err != nil {
				return err
			}

			m := 0
			for {
				b, err := d.br.GetBits(1)
				if err != nil {
					return err
				}
				if b == 1 {
					break
				}
				m++
			}

			if first == 1 {
				ones = m
			} else {
				ones = 8 - m
			}

			idx, err := d.br.GetBits(length[ones])
			if err != nil {
				return err
			}
			number = valueByIndex[ones][idx]
		}

		for i := 0; i < 8; i++ {
			bit := (uint32(number) >> uint(i)) & 1
			d.batch[pos+i] |= bit << uint(k)
		}

		d.counts[k] = min(ones, 8-ones)
	}

	return nil
}
