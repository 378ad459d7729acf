package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCache(t *testing.T) {
	c, err := NewResultCache(100, 0)
	require.NoError(t, err)
	defer c.Close()

	c.Set("a", 3)
	c.Set("b", "not an int")
	c.Wait()

	n, ok := c.GetInt("a")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = c.GetInt("b")
	assert.False(t, ok)

	c.Clear()
	_, ok = c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestResultCache_TTL(t *testing.T) {
	c, err := NewResultCache(100, 50*time.Millisecond)
	require.NoError(t, err)
	defer c.Close()

	c.Set("a", 1)
	c.Wait()
	_, ok := c.Get("a")
	require.True(t, ok)

	time.Sleep(100 * time.Millisecond)
	_, ok = c.Get("a")
	assert.False(t, ok)
}

func TestNewResultCache_InvalidCost(t *testing.T) {
	if _, err := NewResultCache(0, 0); err == nil {
		t.Fatalf("maxCost 0 expected error")
	}
}
