package storefront

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_Add(t *testing.T) {
	t.Parallel()

	t.Run("new item starts at quantity one", func(t *testing.T) {
		t.Parallel()
		var c Cart
		require.True(t, c.Add("t1", "Tacos al Pastor", "85.00", "🌮"))
		require.Len(t, c.Items, 1)
		assert.Equal(t, 1, c.Items[0].Quantity)
		assert.True(t, decimal.RequireFromString("85").Equal(c.Items[0].Price))
		assert.Equal(t, "🌮", c.Items[0].Emoji)
	})

	t.Run("existing id increments instead of appending", func(t *testing.T) {
		t.Parallel()
		var c Cart
		c.Add("t1", "Tacos al Pastor", "85.00", "🌮")
		c.Add("t1", "Tacos al Pastor", "85.00", "🌮")
		require.Len(t, c.Items, 1)
		assert.Equal(t, 2, c.Items[0].Quantity)
	})

	t.Run("unparsable price is ignored", func(t *testing.T) {
		t.Parallel()
		var c Cart
		assert.False(t, c.Add("x", "Raro", "gratis", ""))
		assert.True(t, c.Empty())
	})

	t.Run("missing emoji gets the default", func(t *testing.T) {
		t.Parallel()
		var c Cart
		c.Add("b1", "Horchata", "35", "")
		assert.Equal(t, DefaultEmoji, c.Items[0].Emoji)
	})
}

func TestCart_DecreaseRemovesAtOne(t *testing.T) {
	t.Parallel()

	var c Cart
	c.Add("t1", "Tacos", "85", "")
	c.Add("b1", "Horchata", "35", "")
	c.Increase("t1")

	assert.True(t, c.Decrease("t1"))
	assert.Equal(t, 1, c.Items[0].Quantity)

	assert.True(t, c.Decrease("t1"))
	require.Len(t, c.Items, 1)
	assert.Equal(t, "b1", c.Items[0].ID)

	assert.False(t, c.Decrease("t1"))
}

func TestCart_RemoveAndUnknownIDs(t *testing.T) {
	t.Parallel()

	var c Cart
	c.Add("t1", "Tacos", "85", "")
	assert.False(t, c.Increase("zz"))
	assert.False(t, c.Remove("zz"))
	assert.True(t, c.Remove("t1"))
	assert.True(t, c.Empty())
}

func TestCart_TotalAndCount(t *testing.T) {
	t.Parallel()

	var c Cart
	assert.True(t, c.Total().IsZero())
	assert.Equal(t, 0, c.Count())

	c.Add("t1", "Tacos", "85.00", "")
	c.Add("t1", "Tacos", "85.00", "")
	c.Add("b1", "Horchata", "35.00", "")

	assert.Equal(t, "205.00", c.Total().StringFixed(2))
	assert.Equal(t, 3, c.Count())

	c.Clear()
	assert.True(t, c.Empty())
}
