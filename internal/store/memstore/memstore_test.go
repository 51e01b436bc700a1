package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/homelists/internal/store"
	"github.com/idilsaglam/homelists/internal/store/storetest"
)

func TestStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store { return New() })
}

func TestStore_CopiesValues(t *testing.T) {
	s := New()
	buf := []byte(`[1]`)
	require.NoError(t, s.Write("k", buf))
	buf[1] = '9'
	v, _, err := s.Read("k")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(v))
}
