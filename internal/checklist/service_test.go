package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/homelists/internal/model"
	"github.com/idilsaglam/homelists/internal/store"
	"github.com/idilsaglam/homelists/internal/store/memstore"
)

func newService(t *testing.T) (*Service, store.Store) {
	t.Helper()
	s := memstore.New()
	return NewService(s), s
}

func TestInit_SeedsEmptyStore(t *testing.T) {
	svc, _ := newService(t)
	items, err := svc.Init()
	require.NoError(t, err)
	require.Len(t, items, 14)
	assert.Equal(t, "Check passport validity (must be valid for at least 6 months)", items[0].Text)
	for _, it := range items {
		assert.False(t, it.Completed)
	}

	stored, err := svc.List()
	require.NoError(t, err)
	assert.Equal(t, items, stored)
}

func TestInit_KeepsExistingList(t *testing.T) {
	svc, s := newService(t)
	require.NoError(t, s.Write(StoreKey, []byte(`[{"id":7,"text":"Mine","completed":true}]`)))

	items, err := svc.Init()
	require.NoError(t, err)
	assert.Equal(t, []model.ChecklistItem{{ID: 7, Text: "Mine", Completed: true}}, items)
}

func TestInit_ReseedsMalformedData(t *testing.T) {
	svc, s := newService(t)
	require.NoError(t, s.Write(StoreKey, []byte(`garbage`)))

	items, err := svc.Init()
	require.NoError(t, err)
	assert.Len(t, items, 14)
}

func TestToggle(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Init()
	require.NoError(t, err)

	items, err := svc.Toggle(3)
	require.NoError(t, err)
	assert.True(t, items[2].Completed)

	stored, err := svc.List()
	require.NoError(t, err)
	assert.True(t, stored[2].Completed)

	items, err = svc.Toggle(3)
	require.NoError(t, err)
	assert.False(t, items[2].Completed)
}

func TestToggle_Unknown(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Init()
	require.NoError(t, err)

	_, err = svc.Toggle(99)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAddAndDelete(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Init()
	require.NoError(t, err)

	items, added, err := svc.Add("  Buy a travel adapter ")
	require.NoError(t, err)
	assert.Equal(t, 15, added.ID)
	assert.Equal(t, "Buy a travel adapter", added.Text)
	assert.Len(t, items, 15)

	items, err = svc.Delete(added.ID)
	require.NoError(t, err)
	assert.Len(t, items, 14)

	_, err = svc.Delete(added.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	stored, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, stored, 14)
}

func TestAdd_Empty(t *testing.T) {
	svc, _ := newService(t)
	_, _, err := svc.Add("   ")
	assert.ErrorIs(t, err, model.ErrEmptyText)
}

func TestReset(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Init()
	require.NoError(t, err)
	_, err = svc.Toggle(1)
	require.NoError(t, err)

	items, err := svc.Reset()
	require.NoError(t, err)
	assert.False(t, items[0].Completed)
}
