package lhashtest

import (
	"testing"

	"github.com/gordian-engine/lattice/lhash"
	"github.com/stretchr/testify/require"
)

type HasherFactory func() (h lhash.Hasher, hexLen int)

func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("sum is deterministic", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		s01 := h.Sum([]byte("deterministic_data"))
		s02 := h.Sum([]byte("deterministic_data"))

		require.Equal(t, s01, s02)
	})

	t.Run("sum is lowercase hex of the reported length", func(t *testing.T) {
		t.Parallel()

		h, hexLen := f()

		s := h.Sum([]byte("hello"))
		require.Len(t, s, hexLen)

		for i := 0; i < len(s); i++ {
			c := s[i]
			ok := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
			require.Truef(t, ok, "byte %q at index %d is not lowercase hex", c, i)
		}
	})

	t.Run("sum respects input", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		s01 := h.Sum([]byte("input_1"))
		s02 := h.Sum([]byte("input_2"))

		require.NotEqual(t, s01, s02)
	})

	t.Run("empty input is digestible", func(t *testing.T) {
		t.Parallel()

		h, hexLen := f()

		require.Len(t, h.Sum(nil), hexLen)
	})
}
