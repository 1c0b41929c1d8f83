package bitio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/numcodec/errs"
)

func TestWriter32_Scenario5(t *testing.T) {
	var buf bytes.Buffer
	bw := NewWriter32(&buf)

	bw.UnsafeAdd(0b10110011, 15)
	bw.UnsafeAdd(0b101, 3)
	require.NoError(t, bw.Flush())
	bw.UnsafeAdd(0b10001, 5)
	require.NoError(t, bw.Flush())
	bw.UnsafeAdd(0b01, 2)
	require.NoError(t, bw.Flush())
	require.NoError(t, bw.Finish())

	got := buf.Bytes()
	require.GreaterOrEqual(t, len(got), 4)
	require.Equal(t, byte(0b10110011), got[0])
	require.Equal(t, byte(0b10000000), got[1])
	require.Equal(t, byte(0b11000110), got[2])
	require.Equal(t, byte(0b11111100), got[3])
}

func TestWriter32_Scenario6(t *testing.T) {
	var buf bytes.Buffer
	bw := NewWriter32(&buf)

	bw.UnsafeAdd(0b10110011, 8)
	bw.UnsafeAdd(0b1100, 4)
	bw.UnsafeAdd(0b10001, 5)
	require.NoError(t, bw.Finish())

	got := buf.Bytes()
	require.Equal(t, 3, len(got))
	require.Equal(t, byte(0b10110011), got[0])
	require.Equal(t, byte(0b00011100), got[1])
	require.Equal(t, byte(0b11111101), got[2])
}

func TestWriter32_EndMarkerIdempotence(t *testing.T) {
	var buf bytes.Buffer
	bw := NewWriter32(&buf)
	require.NoError(t, bw.Finish())

	got := buf.Bytes()
	require.Equal(t, 1, len(got))
	require.Equal(t, byte(0b11111110), got[0])
}

func TestWriter64_EndMarkerIdempotence(t *testing.T) {
	var buf bytes.Buffer
	bw := NewWriter64(&buf)
	require.NoError(t, bw.Finish())

	got := buf.Bytes()
	require.Equal(t, 1, len(got))
	require.Equal(t, byte(0b11111110), got[0])
}

func TestReader32_EmptyStreamEndsImmediately(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter32(&buf).Finish())

	br := NewReader32(&buf)
	_, err := br.GetBits(1)
	require.ErrorIs(t, err, errs.ErrEndOfStream)
}

func TestReader64_EmptyStreamEndsImmediately(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter64(&buf).Finish())

	br := NewReader64(&buf)
	_, err := br.GetBits(1)
	require.ErrorIs(t, err, errs.ErrEndOfStream)
}

func TestWriter32Reader32_RoundTrip(t *testing.T) {
	type field struct {
		value uint64
		bits  int
	}
	fields := []field{
		{0x1, 1}, {0x3, 2}, {0x0, 3}, {0x2A, 7}, {0xFFFFFFFF, 32},
		{0x5, 5}, {0x0, 1}, {0x1234, 16}, {0x1, 1}, {0x3FF, 10},
	}

	var buf bytes.Buffer
	bw := NewWriter32(&buf)
	for _, f := range fields {
		require.NoError(t, bw.SafeAdd(f.value, f.bits))
	}
	require.NoError(t, bw.Finish())

	br := NewReader32(&buf)
	for _, f := range fields {
		got, err := br.GetBits(f.bits)
		require.NoError(t, err)

		mask := uint64(1)<<uint(f.bits) - 1
		if f.bits >= 64 {
			mask = ^uint64(0)
		}
		require.Equal(t, f.value&mask, got)
	}

	_, err := br.GetBits(1)
	require.ErrorIs(t, err, errs.ErrEndOfStream)
}

func TestWriter64Reader64_RoundTrip(t *testing.T) {
	type field struct {
		value uint64
		bits  int
	}
	fields := []field{
		{0xFFFFFFFFFFFFFFFF, 64}, {0x1, 1}, {0xDEADBEEF, 32}, {0x0, 5},
		{0xFFFFFFFFFFFFFFFF, 64}, {0x7, 3}, {0x0, 64}, {0x1, 1},
	}

	var buf bytes.Buffer
	bw := NewWriter64(&buf)
	for _, f := range fields {
		require.NoError(t, bw.SafeAdd(f.value, f.bits))
	}
	require.NoError(t, bw.Finish())

	br := NewReader64(&buf)
	for _, f := range fields {
		got, err := br.GetBits(f.bits)
		require.NoError(t, err)

		mask := uint64(1)<<uint(f.bits) - 1
		if f.bits >= 64 {
			mask = ^uint64(0)
		}
		require.Equal(t, f.value&mask, got)
	}

	_, err := br.GetBits(1)
	require.ErrorIs(t, err, errs.ErrEndOfStream)
}

func TestWriter32_IdenticalRunsAreZeroDominated(t *testing.T) {
	// Sanity check on the flush/finish machinery used by the Gorilla codec's
	// "sequence of identical values" boundary case (spec §8.2): a long run
	// of 0 bits followed by the end marker should not disturb earlier bytes.
	var buf bytes.Buffer
	bw := NewWriter32(&buf)
	for range 100 {
		bw.UnsafeAdd(0, 1)
		require.NoError(t, bw.Flush())
	}
	require.NoError(t, bw.Finish())

	br := NewReader32(&buf)
	for range 100 {
		got, err := br.GetBits(1)
		require.NoError(t, err)
		require.Equal(t, uint64(0), got)
	}
	_, err := br.GetBits(1)
	require.ErrorIs(t, err, errs.ErrEndOfStream)
}
