package gorilla

import (
	"bytes"
	"testing"

	"github.com/arloliu/numcodec/internal/hash"
	"github.com/stretchr/testify/require"
)

// TestEncoder32_DeterministicOutput checks spec.md §8.1's determinism
// property (same input sequence always produces the same encoded bytes) via
// an xxHash64 fingerprint rather than a full byte comparison, matching how
// the CLI's -x flag lets callers spot-check large payloads cheaply.
func TestEncoder32_DeterministicOutput(t *testing.T) {
	values := []uint32{0, 1, 1, 2, 100, 100, 100, 0xFFFFFFFF, 42}

	fingerprint := func() uint64 {
		var buf bytes.Buffer
		enc := NewEncoder32(&buf)
		for _, v := range values {
			require.NoError(t, enc.AddUint32(v))
		}
		require.NoError(t, enc.Finish())

		return hash.Bytes(buf.Bytes())
	}

	first := fingerprint()
	for i := 0; i < 5; i++ {
		require.Equal(t, first, fingerprint())
	}
}
