package gorilla

import (
	"io"
	"math"
	"math/bits"

	"github.com/arloliu/numcodec/bitio"
	"github.com/arloliu/numcodec/errs"
)

const (
	lzBits32 = 5 // ceil(log2(32))
	sbBits32 = 6 // ceil(log2(32)) + 1
)

// Encoder32 encodes a sequence of 32-bit values with the Gorilla delta-XOR
// codec. It must be driven with AddUint32/AddFloat32 and closed with Finish
// exactly once.
type Encoder32 struct {
	bw                *bitio.Writer32
	prev              uint32
	prevLeadingZeros  int
	prevTrailingZeros int
	hasWindow         bool
	finished          bool
}

// NewEncoder32 creates an encoder writing to w.
func NewEncoder32(w io.Writer) *Encoder32 {
	return &Encoder32{bw: bitio.NewWriter32(w)}
}

// AddUint32 encodes the next value in the sequence.
func (e *Encoder32) AddUint32(v uint32) error {
	d := v ^ e.prev

	var err error
	if d == 0 {
		err = e.bw.SafeAdd(0, 1)
	} else {
		err = e.addNonZero(d)
	}
	if err != nil {
		return err
	}

	if err := e.bw.Flush(); err != nil {
		return err
	}
	e.prev = v

	return nil
}

// AddFloat32 encodes v's IEEE-754 bit pattern.
func (e *Encoder32) AddFloat32(v float32) error {
	return e.AddUint32(math.Float32bits(v))
}

func (e *Encoder32) addNonZero(d uint32) error {
	if err := e.bw.SafeAdd(1, 1); err != nil {
		return err
	}

	lz := bits.LeadingZeros32(d)
	tz := bits.TrailingZeros32(d)
	sb := 32 - lz - tz

	if e.hasWindow && lz >= e.prevLeadingZeros && tz >= e.prevTrailingZeros {
		if err := e.bw.SafeAdd(0, 1); err != nil {
			return err
		}
		width := 32 - e.prevLeadingZeros - e.prevTrailingZeros

		return e.bw.SafeAdd(uint64(d)>>uint(e.prevTrailingZeros), width)
	}

	if err := e.bw.SafeAdd(1, 1); err != nil {
		return err
	}
	if err := e.bw.SafeAdd(uint64(lz), lzBits32); err != nil {
		return err
	}
	if err := e.bw.SafeAdd(uint64(sb), sbBits32); err != nil {
		return err
	}
	if err := e.bw.SafeAdd(uint64(d)>>uint(tz), sb); err != nil {
		return err
	}

	e.prevLeadingZeros = lz
	e.prevTrailingZeros = tz
	e.hasWindow = true

	return nil
}

// Finish terminates the underlying bit workspace. It must be called exactly
// once, after the last Add call.
func (e *Encoder32) Finish() error {
	if e.finished {
		panic(errs.ErrAlreadyFinished)
	}
	e.finished = true

	return e.bw.Finish()
}
