package bitio

import (
	"fmt"
	"io"

	"github.com/arloliu/numcodec/errs"
)

// Reader32 is the bit workspace for 32-bit-wide values (W=32, B=64).
type Reader32 struct {
	r        io.Reader
	acc      uint64
	capacity int // 0 <= capacity <= widthB32
	end      bool
}

// NewReader32 creates a bit workspace reader over r.
func NewReader32(r io.Reader) *Reader32 {
	return &Reader32{r: r}
}

// GetBits returns the next bits bits as a right-aligned value.
//
// Until end-of-stream has been seen, it keeps at least one byte beyond the
// requested bits loaded, so that bits of the final (end-marker) byte are
// never handed out before the marker has been stripped.
func (br *Reader32) GetBits(bits int) (uint64, error) {
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

	value := br.acc & maskOnes64(bits)
	br.acc >>= uint(bits)
	br.capacity -= bits

	return value, nil
}

// load pulls more bytes from the underlying reader, interpreting them as
// native little-endian and OR-ing them into the accumulator above the
// currently valid bits. When the underlying stream is exhausted it strips
// the end marker and flags end-of-stream.
func (br *Reader32) load() error {
	expected := (widthB32 - br.capacity) / 8
	if expected == 0 {
		return nil
	}

	buf := make([]byte, expected)
	n, err := io.ReadFull(br.r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return fmt.Errorf("bitio: load: %w", err)
	}

	if n > 0 {
		var full [8]byte
		copy(full[:], buf[:n])
		chunk := leEngine.Uint64(full[:]) & maskOnes64(n*8)
		br.acc |= chunk << uint(br.capacity)
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
func (br *Reader32) stripEndMarker() {
	for br.capacity > 0 && (br.acc>>uint(br.capacity-1))&1 == 1 {
		br.capacity--
	}
	if br.capacity > 0 {
		br.capacity--
	}
}

func maskOnes64(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	if bits <= 0 {
		return 0
	}

	return (uint64(1) << uint(bits)) - 1
}
