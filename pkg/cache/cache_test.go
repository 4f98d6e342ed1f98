package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := Memory()

	type payload struct {
		Country string  `json:"country"`
		Revenue float64 `json:"revenue"`
	}

	in := []payload{{Country: "India", Revenue: 70000}, {Country: "USA", Revenue: 4000}}
	require.NoError(t, store.Set("revenue_by_country:all", in, time.Minute))

	var out []payload
	require.True(t, store.Get("revenue_by_country:all", &out))
	assert.Equal(t, in, out)
}

func TestMemoryStoreMiss(t *testing.T) {
	store := Memory()

	var out float64
	assert.False(t, store.Get("total_revenue:all", &out))
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := Memory()

	require.NoError(t, store.Set("total_revenue:all", 75000.0, 10*time.Millisecond))
	time.Sleep(25 * time.Millisecond)

	var out float64
	assert.False(t, store.Get("total_revenue:all", &out))
}

func TestMemoryStoreFlush(t *testing.T) {
	store := Memory()

	require.NoError(t, store.Set("a", 1, time.Minute))
	require.NoError(t, store.Set("b", 2, time.Minute))
	require.NoError(t, store.Flush())

	var out int
	assert.False(t, store.Get("a", &out))
	assert.False(t, store.Get("b", &out))
}

func TestNopStoreNeverHits(t *testing.T) {
	store := Nop()

	require.NoError(t, store.Set("k", "v", time.Minute))

	var out string
	assert.False(t, store.Get("k", &out))
	assert.Equal(t, "off", store.Driver())
}
