package entropy

import (
	"io"
	"math"
	"math/bits"

	"github.com/arloliu/numcodec/bitio"
	"github.com/arloliu/numcodec/errs"
)

// Decoder64 decodes a sequence of 64-bit values previously written by
// Encoder64.
type Decoder64 struct {
	br            *bitio.Reader64
	batch         [256]uint64
	batchPosition int
	batchCapacity int
	counts        [planes64]int
}

// NewDecoder64 creates a decoder reading from r.
func NewDecoder64(r io.Reader) *Decoder64 {
	d := &Decoder64{br: bitio.NewReader64(r)}
	for k := range d.counts {
		d.counts[k] = 8
	}

	return d
}

// NextUint64 decodes and returns the next value in the sequence.
func (d *Decoder64) NextUint64() (uint64, error) {
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

// NextFloat64 decodes the next value and reinterprets its bit pattern as a
// float64.
func (d *Decoder64) NextFloat64() (float64, error) {
	v, err := d.NextUint64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

func (d *Decoder64) load() error {
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

func (d *Decoder64) load8(pos int) error {
	for k := 0; k < planes64; k++ {
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
			bit := (uint64(number) >> uint(i)) & 1
			d.batch[pos+i] |= bit << uint(k)
		}

		d.counts[k] = min(ones, 8-ones)
	}

	return nil
}
