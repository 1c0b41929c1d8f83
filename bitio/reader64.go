package bitio

import (
	"fmt"
	"io"

	"github.com/arloliu/numcodec/errs"
)

// Reader64 is the bit workspace for 64-bit-wide values (W=64, B=128).
type Reader64 struct {
	r        io.Reader
	acc      u128
	capacity int // 0 <= capacity <= widthB64
	end      bool
}

// NewReader64 creates a bit workspace reader over r.
func NewReader64(r io.Reader) *Reader64 {
	return &Reader64{r: r}
}

// GetBits returns the next bits bits as a right-aligned value.
//
// Until end-of-stream has been seen, it keeps at least one byte beyond the
// requested bits loaded, so that bits of the final (end-marker) byte are
// never handed out before the marker has been stripped.
func (br *Reader64) GetBits(bits int) (uint64, error) {
	if bits <= 0 {
		return 0, nil
	}
	if br.capacity < bits+8 && !br.end {
		if err := br.load(); err != nil {
			return 0, err
		}
	}
	if br.capacity < bits {
		return 0, errs.ErrEndOfStream
	}

	value := br.acc.low(bits)
	br.acc = br.acc.shr(uint(bits))
	br.capacity -= bits

	return value, nil
}

// load pulls more bytes from the underlying reader, interpreting them as
// native little-endian and OR-ing them into the accumulator above the
// currently valid bits. When the underlying stream is exhausted it strips
// the end marker and flags end-of-stream.
func (br *Reader64) load() error {
	expected := (widthB64 - br.capacity) / 8
	if expected == 0 {
		return nil
	}

	buf := make([]byte, expected)
	n, err := io.ReadFull(br.r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return fmt.Errorf("bitio: load: %w", err)
	}

	if n > 0 {
		var loBuf, hiBuf [8]byte
		loN := n
		if loN > 8 {
			loN = 8
		}
		copy(loBuf[:], buf[:loN])
		if n > 8 {
			copy(hiBuf[:], buf[8:n])
		}
		chunk := u128{
			lo: leEngine.Uint64(loBuf[:]),
			hi: leEngine.Uint64(hiBuf[:]),
		}
		br.acc = br.acc.or(chunk.shl(uint(br.capacity)))
		br.capacity += n * 8
	}

	if n < expected {
		br.stripEndMarker()
		br.end = true
	}

	return nil
}

// stripEndMarker removes the trailing run of 1-bits and the 0-bit marker
// that precedes them, leaving capacity at exactly the number of
// logically-emitted bits.
func (br *Reader64) stripEndMarker() {
	for br.capacity > 0 && br.acc.bit(uint(br.capacity-1)) == 1 {
		br.capacity--
	}
	if br.capacity > 0 {
		br.capacity--
	}
}
