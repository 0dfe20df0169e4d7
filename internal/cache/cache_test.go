package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	c := New(time.Minute)
	c.Set("k", "v")

	v, found := c.Get("k")
	require.True(t, found)
	assert.Equal(t, "v", v)
}

func TestGetMissing(t *testing.T) {
	c := New(time.Minute)

	_, found := c.Get("missing")
	assert.False(t, found)
}

func TestEntryExpires(t *testing.T) {
	c := New(time.Minute)
	c.Set("k", "v", 10*time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	_, found := c.Get("k")
	assert.False(t, found)
}

func TestDeleteByPrefix(t *testing.T) {
	c := New(time.Minute)
	c.Set("products:list:p1", 1)
	c.Set("products:list:p2", 2)
	c.Set("product:1", 3)

	c.DeleteByPrefix("products:list:")

	_, found := c.Get("products:list:p1")
	assert.False(t, found)
	_, found = c.Get("products:list:p2")
	assert.False(t, found)
	_, found = c.Get("product:1")
	assert.True(t, found)
}

func TestClearAndSize(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	assert.Equal(t, 2, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}
