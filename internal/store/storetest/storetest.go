// Package storetest holds the behavior every store.Store backend must share.
package storetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/homelists/internal/store"
)

// Run exercises a backend. open must return a fresh, empty store.
func Run(t *testing.T, open func(t *testing.T) store.Store) {
	t.Helper()

	t.Run("missing key", func(t *testing.T) {
		s := open(t)
		v, ok, err := s.Read("cyprusVisaTodos")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("write then read", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Write("recipes", []byte(`[{"id":1}]`)))
		v, ok, err := s.Read("recipes")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `[{"id":1}]`, string(v))
	})

	t.Run("overwrite", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Write("recipes", []byte(`[1,2,3]`)))
		require.NoError(t, s.Write("recipes", []byte(`[]`)))
		v, ok, err := s.Read("recipes")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[]`, string(v))
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Write("a", []byte(`"a"`)))
		require.NoError(t, s.Write("b", []byte(`"b"`)))
		v, _, err := s.Read("a")
		require.NoError(t, err)
		assert.Equal(t, `"a"`, string(v))
	})

	t.Run("invalid key", func(t *testing.T) {
		s := open(t)
		for _, k := range []string{"", "../escape", `a\b`} {
			_, _, err := s.Read(k)
			assert.ErrorIs(t, err, store.ErrInvalidKey, k)
			assert.ErrorIs(t, s.Write(k, []byte(`[]`)), store.ErrInvalidKey, k)
		}
	})

	t.Run("collection round trip", func(t *testing.T) {
		type row struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		}
		c := store.NewCollection[row](open(t), "rows")
		got, err := c.Load()
		require.NoError(t, err)
		assert.Empty(t, got)

		want := []row{{1, "one"}, {2, "two"}}
		require.NoError(t, c.Save(want))
		got, err = c.Load()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
