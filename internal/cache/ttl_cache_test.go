package cache

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTTLCache_SetGet_NoTTL(t *testing.T) {
	c := NewTTLCache[uint, []string]()
	c.Set(1, []string{"a"}, 0)

	v, ok := c.Get(1)
	require.True(t, ok)
	require.Equal(t, []string{"a"}, v)
	require.Len(t, c.items, 1)
}

func TestTTLCache_Expiry(t *testing.T) {
	c := NewTTLCache[string, string]()

	base := time.Now()
	now = func() time.Time { return base }
	t.Cleanup(func() { now = time.Now })

	c.Set("k", "v", time.Second)
	_, ok := c.Get("k")
	require.True(t, ok)

	base = base.Add(2 * time.Second)
	_, ok = c.Get("k")
	require.False(t, ok)
	require.Len(t, c.items, 1)

	c.Set("live", "v", 0)
	c.PurgeExpired()
	require.Len(t, c.items, 1)
	_, ok = c.Get("live")
	require.True(t, ok)
}

func TestTTLCache_GetOrLoad(t *testing.T) {
	c := NewTTLCache[uint, int]()
	calls := 0
	load := func() (int, error) {
		calls++
		return 42, nil
	}

	v, err := c.GetOrLoad(7, time.Minute, load)
	require.NoError(t, err)
	require.Equal(t, 42, v)

	v, err = c.GetOrLoad(7, time.Minute, load)
	require.NoError(t, err)
	require.Equal(t, 42, v)
	require.Equal(t, 1, calls)

	c.Delete(7)
	_, err = c.GetOrLoad(7, time.Minute, load)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestTTLCache_GetOrLoad_ErrorNotCached(t *testing.T) {
	c := NewTTLCache[uint, int]()
	boom := errors.New("boom")

	_, err := c.GetOrLoad(1, time.Minute, func() (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
	_, ok := c.Get(1)
	require.False(t, ok)
}

func TestTTLCache_Concurrent(t *testing.T) {
	c := NewTTLCache[int, int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for r := 0; r < 100; r++ {
				c.Set(i, r, 0)
				_, _ = c.Get(i)
			}
		}(i)
	}
	wg.Wait()
	require.Len(t, c.items, 50)
}
