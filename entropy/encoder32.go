package entropy

import (
	"io"
	"math"
	"math/bits"

	"github.com/arloliu/numcodec/bitio"
	"github.com/arloliu/numcodec/errs"
)

const planes32 = 32

// Encoder32 encodes a sequence of 32-bit values with the Entropy bit-plane
// codec. It must be driven with AddUint32/AddFloat32 and closed with Finish
// exactly once.
type Encoder32 struct {
	bw        *bitio.Writer32
	batch     [256]uint32
	batchSize int
	counts    [planes32]int
	finished  bool
}

// NewEncoder32 creates an encoder writing to w.
func NewEncoder32(w io.Writer) *Encoder32 {
	e := &Encoder32{bw: bitio.NewWriter32(w)}
	for k := range e.counts {
		e.counts[k] = 8
	}

	return e
}

// AddUint32 stages the next value in the sequence, flushing a full batch
// when 256 values have accumulated.
func (e *Encoder32) AddUint32(v uint32) error {
	if e.finished {
		panic(errs.ErrAlreadyFinished)
	}
	e.batch[e.batchSize] = v
	e.batchSize++
	if e.batchSize < 256 {
		return nil
	}

	if err := e.bw.SafeAdd(1, 1); err != nil {
		return err
	}

	return e.dump()
}

// AddFloat32 stages v's IEEE-754 bit pattern.
func (e *Encoder32) AddFloat32(v float32) error {
	return e.AddUint32(math.Float32bits(v))
}

func (e *Encoder32) dump() error {
	for pos := 0; pos < e.batchSize; pos += 8 {
		if err := e.dump8(pos); err != nil {
			return err
		}
	}
	e.batchSize = 0

	return nil
}

func (e *Encoder32) dump8(pos int) error {
	for k := 0; k < planes32; k++ {
		if err := e.bw.Flush(); err != nil {
			return err
		}

		var number uint8
		for i := 0; i < 8; i++ {
			bit := (e.batch[pos+i] >> uint(k)) & 1
			number |= uint8(bit) << uint(i)
		}

		ones := bits.OnesCount8(number)
		zeros := 8 - ones
		m := min(ones, zeros)

		if e.counts[k] > 1 {
			if err := e.bw.SafeAdd(uint64(number), 8); err != nil {
				return err
			}
		} else {
			first := uint64(0)
			if ones < zeros {
				first = 1
			}
			if err := e.bw.SafeAdd(first, 1); err != nil {
				return err
			}
			if err := e.bw.SafeAdd(uint64(1)<<uint(m), m+1); err != nil {
				return err
			}
			idx := indexByValue[number]
			if err := e.bw.SafeAdd(uint64(idx), length[ones]); err != nil {
				return err
			}
		}

		e.counts[k] = min(ones, 8-ones)
	}

	return nil
}

// Finish terminates the staged batch (if any) and the underlying bit
// workspace. It must be called exactly once, after the last Add call.
func (e *Encoder32) Finish() error {
	if e.finished {
		panic(errs.ErrAlreadyFinished)
	}
	e.finished = true

	if e.batchSize > 0 {
		if err := e.bw.SafeAdd(uint64(e.batchSize)<<1, 9); err != nil {
			return err
		}
		last := e.batch[e.batchSize-1]
		for e.batchSize%8 != 0 {
			e.batch[e.batchSize] = last
			e.batchSize++
		}
		if err := e.dump(); err != nil {
			return err
		}
	}

	return e.bw.Finish()
}
