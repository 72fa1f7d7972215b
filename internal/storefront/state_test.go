package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountdto "storefront_backend/internal/feature/account/transport/http/dto"
)

func TestLoad_Empty(t *testing.T) {
	t.Parallel()

	st, err := Load(NewMemoryStorage())
	require.NoError(t, err)
	assert.True(t, st.Cart.Empty())
	assert.False(t, st.LoggedIn())
}

func TestLoad_RoundTripsCartAndSession(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	var c Cart
	c.Add("t1", "Tacos al Pastor", "85.00", "🌮")
	c.Increase("t1")
	require.NoError(t, saveCart(store, &c))
	require.NoError(t, saveSession(store, &accountdto.SessionUser{ID: 7, Name: "Ana López", Email: "ana@x.mx"}))

	st, err := Load(store)
	require.NoError(t, err)
	require.Len(t, st.Cart.Items, 1)
	assert.Equal(t, 2, st.Cart.Items[0].Quantity)
	assert.Equal(t, "170.00", st.Cart.Total().StringFixed(2))
	require.True(t, st.LoggedIn())
	assert.Equal(t, uint(7), st.Session.ID)
}

func TestLoad_SessionNeedsFlagAndUser(t *testing.T) {
	t.Parallel()

	t.Run("user without flag", func(t *testing.T) {
		t.Parallel()
		store := NewMemoryStorage()
		require.NoError(t, store.Set(KeyCurrentUser, `{"id":1,"name":"Ana"}`))
		st, err := Load(store)
		require.NoError(t, err)
		assert.False(t, st.LoggedIn())
	})

	t.Run("flag without user", func(t *testing.T) {
		t.Parallel()
		store := NewMemoryStorage()
		require.NoError(t, store.Set(KeyLoggedIn, "true"))
		st, err := Load(store)
		require.NoError(t, err)
		assert.False(t, st.LoggedIn())
	})

	t.Run("corrupt entries are dropped", func(t *testing.T) {
		t.Parallel()
		store := NewMemoryStorage()
		require.NoError(t, store.Set(KeyCart, "{"))
		require.NoError(t, store.Set(KeyLoggedIn, "true"))
		require.NoError(t, store.Set(KeyCurrentUser, "nope"))
		st, err := Load(store)
		require.NoError(t, err)
		assert.True(t, st.Cart.Empty())
		assert.False(t, st.LoggedIn())
	})
}

func TestSaveCart_EmptyIsArray(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	require.NoError(t, saveCart(store, &Cart{}))
	v, err := store.Get(KeyCart)
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}
