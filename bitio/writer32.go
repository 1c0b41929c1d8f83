package bitio

import (
	"fmt"
	"io"

	"github.com/arloliu/numcodec/endian"
	"github.com/arloliu/numcodec/errs"
)

const widthB32 = 64 // workspace width B = 2*W for W=32

var leEngine = endian.GetLittleEndianEngine()

// Writer32 is the bit workspace for 32-bit-wide values (W=32, B=64).
//
// It accumulates bits LSB-first into a 64-bit accumulator and flushes whole
// bytes to w in native little-endian order. Finish must be called exactly
// once, after which the Writer32 is no longer usable.
type Writer32 struct {
	w        io.Writer
	acc      uint64
	position int // 0 <= position <= widthB32
	finished bool
}

// NewWriter32 creates a bit workspace writer over w.
func NewWriter32(w io.Writer) *Writer32 {
	return &Writer32{w: w}
}

// UnsafeAdd inserts the low bits bits of value at the current offset.
// The caller must ensure position+bits <= widthB32; use SafeAdd otherwise.
func (bw *Writer32) UnsafeAdd(value uint64, bits int) {
	if bw.finished {
		panic(errs.ErrAlreadyFinished)
	}
	if bits <= 0 {
		return
	}

	bw.acc |= maskLow64(bits, value) << uint(bw.position)
	bw.position += bits
}

// SafeAdd is UnsafeAdd without the precondition: it flushes first if the
// value would not fit in the remaining accumulator space.
func (bw *Writer32) SafeAdd(value uint64, bits int) error {
	if bits <= 0 {
		return nil
	}
	if bw.position+bits > widthB32 {
		if err := bw.Flush(); err != nil {
			return err
		}
	}
	bw.UnsafeAdd(value, bits)

	return nil
}

// Flush emits the largest whole-byte prefix of the accumulator and shifts
// the remainder down. It may not empty the accumulator completely.
func (bw *Writer32) Flush() error {
	nBytes := bw.position / 8
	if nBytes == 0 {
		return nil
	}

	var buf [8]byte
	leEngine.PutUint64(buf[:], bw.acc)
	if _, err := bw.w.Write(buf[:nBytes]); err != nil {
		return fmt.Errorf("bitio: flush: %w", err)
	}

	bw.acc >>= uint(nBytes * 8)
	bw.position -= nBytes * 8

	return nil
}

// Finish terminates the stream: it flushes, writes the single 0-bit end
// marker, pads the final byte with 1 bits, and flushes once more. It must be
// called exactly once.
func (bw *Writer32) Finish() error {
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

func maskLow64(bits int, value uint64) uint64 {
	if bits >= 64 {
		return value
	}

	return value & ((uint64(1) << uint(bits)) - 1)
}
