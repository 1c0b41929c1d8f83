package gorilla

import (
	"io"
	"math"
	"math/bits"

	"github.com/arloliu/numcodec/bitio"
	"github.com/arloliu/numcodec/errs"
)

const (
	lzBits64 = 6 // ceil(log2(64))
	sbBits64 = 7 // ceil(log2(64)) + 1
)

// Encoder64 encodes a sequence of 64-bit values with the Gorilla delta-XOR
// codec. It must be driven with AddUint64/AddFloat64 and closed with Finish
// exactly once.
type Encoder64 struct {
	bw                *bitio.Writer64
	prev              uint64
	prevLeadingZeros  int
	prevTrailingZeros int
	hasWindow         bool
	finished          bool
}

// NewEncoder64 creates an encoder writing to w.
func NewEncoder64(w io.Writer) *Encoder64 {
	return &Encoder64{bw: bitio.NewWriter64(w)}
}

// AddUint64 encodes the next value in the sequence.
func (e *Encoder64) AddUint64(v uint64) error {
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

// AddFloat64 encodes v's IEEE-754 bit pattern.
func (e *Encoder64) AddFloat64(v float64) error {
	return e.AddUint64(math.Float64bits(v))
}

func (e *Encoder64) addNonZero(d uint64) error {
	if err := e.bw.SafeAdd(1, 1); err != nil {
		return err
	}

	lz := bits.LeadingZeros64(d)
	tz := bits.TrailingZeros64(d)
	sb := 64 - lz - tz

	if e.hasWindow && lz >= e.prevLeadingZeros && tz >= e.prevTrailingZeros {
		if err := e.bw.SafeAdd(0, 1); err != nil {
			return err
		}
		width := 64 - e.prevLeadingZeros - e.prevTrailingZeros

		return e.bw.SafeAdd(d>>uint(e.prevTrailingZeros), width)
	}

	if err := e.bw.SafeAdd(1, 1); err != nil {
		return err
	}
	if err := e.bw.SafeAdd(uint64(lz), lzBits64); err != nil {
		return err
	}
	if err := e.bw.SafeAdd(uint64(sb), sbBits64); err != nil {
		return err
	}
	if err := e.bw.SafeAdd(d>>uint(tz), sb); err != nil {
		return err
	}

	e.prevLeadingZeros = lz
	e.prevTrailingZeros = tz
	e.hasWindow = true

	return nil
}

// Finish terminates the underlying bit workspace. It must be called exactly
// once, after the last Add call.
func (e *Encoder64) Finish() error {
	if e.finished {
		panic(errs.ErrAlreadyFinished)
	}
	e.finished = true

	return e.bw.Finish()
}
