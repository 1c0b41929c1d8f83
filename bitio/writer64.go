package bitio

import (
	"fmt"
	"io"

	"github.com/arloliu/numcodec/errs"
)

const widthB64 = 128 // workspace width B = 2*W for W=64

// Writer64 is the bit workspace for 64-bit-wide values (W=64, B=128).
//
// It accumulates bits LSB-first into a 128-bit accumulator (see u128) and
// flushes whole bytes to w in native little-endian order. Finish must be
// called exactly once, after which the Writer64 is no longer usable.
type Writer64 struct {
	w        io.Writer
	acc      u128
	position int // 0 <= position <= widthB64
	finished bool
}

// NewWriter64 creates a bit workspace writer over w.
func NewWriter64(w io.Writer) *Writer64 {
	return &Writer64{w: w}
}

// UnsafeAdd inserts the low bits bits of value at the current offset.
// The caller must ensure position+bits <= widthB64; use SafeAdd otherwise.
func (bw *Writer64) UnsafeAdd(value uint64, bits int) {
	if bw.finished {
		panic(errs.ErrAlreadyFinished)
	}
	if bits <= 0 {
		return
	}

	bw.acc = bw.acc.or(u128From64(maskLow64(bits, value)).shl(uint(bw.position)))
	bw.position += bits
}

// SafeAdd is UnsafeAdd without the precondition: it flushes first if the
// value would not fit in the remaining accumulator space.
func (bw *Writer64) SafeAdd(value uint64, bits int) error {
	if bits <= 0 {
		return nil
	}
	if bw.position+bits > widthB64 {
		if err := bw.Flush(); err != nil {
			return err
		}
	}
	bw.UnsafeAdd(value, bits)

	return nil
}

// Flush emits the largest whole-byte prefix of the accumulator and shifts
// the remainder down. It may not empty the accumulator completely.
func (bw *Writer64) Flush() error {
	nBytes := bw.position / 8
	if nBytes == 0 {
		return nil
	}

	var buf [16]byte
	leEngine.PutUint64(buf[0:8], bw.acc.lo)
	leEngine.PutUint64(buf[8:16], bw.acc.hi)
	if _, err := bw.w.Write(buf[:nBytes]); err != nil {
		return fmt.Errorf("bitio: flush: %w", err)
	}

	bw.acc = bw.acc.shr(uint(nBytes * 8))
	bw.position -= nBytes * 8

	return nil
}

// Finish terminates the stream: it flushes, writes the single 0-bit end
// marker, pads the final byte with 1 bits, and flushes once more. It must be
// called exactly once.
func (bw *Writer64) Finish() error {
	if bw.finished {
		panic(errs.ErrAlreadyFinished)
	}

	if err := bw.Flush(); err != nil {
		return err
	}
	if err := bw.SafeAdd(0, 1); err != nil {
		return err
	}
	pad := (8 - bw.position%8) % 8
	if err := bw.SafeAdd(^uint64(0), pad); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	bw.finished = true

	return nil
}
