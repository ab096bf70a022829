package wire

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheEviction(t *testing.T) {
	for _, capacity := range []int{1, 5, 16, 17, 40} {
		c := newCache(capacity)
		for i := 0; i < 500; i++ {
			c.put([]byte(fmt.Sprint(i)), []byte("b"), []byte("null"))
			require.LessOrEqual(t, c.len(), capacity)
		}
		require.NotZero(t, c.len())
	}

	c := newCache(0)
	c.put([]byte("a"), []byte("b"), []byte("1"))
	c.put([]byte("c"), []byte("d"), []byte("2"))
	require.Equal(t, 1, c.len())
}

func TestCacheKeySplit(t *testing.T) {
	// Same concatenation, different split.
	require.NotEqual(t, cacheKey([]byte("ab"), []byte("c")), cacheKey([]byte("a"), []byte("bc")))

	c := newCache(64)
	c.put([]byte("ab"), []byte("c"), []byte("1"))
	_, ok := c.get([]byte("a"), []byte("bc"))
	require.False(t, ok)
	out, ok := c.get([]byte("ab"), []byte("c"))
	require.True(t, ok)
	require.Equal(t, "1", string(out))

	// Returned slices are copies.
	out[0] = '9'
	out, _ = c.get([]byte("ab"), []byte("c"))
	require.Equal(t, "1", string(out))
}

func TestCodecCache(t *testing.T) {
	codec, err := NewCodec(JSON, nil)
	require.NoError(t, err)
	codec = codec.WithCache(8)

	a := []byte(`{"points":[{"x":0,"y":0},{"x":1,"y":0},{"x":0,"y":1}]}`)
	first, err := codec.TestPolyPoly(a, a)
	require.NoError(t, err)
	require.Equal(t, 1, codec.cache.len())
	second, err := codec.TestPolyPoly(a, a)
	require.NoError(t, err)
	require.Equal(t, first, second)

	_, err = codec.TestPolyPoly(a, []byte("{"))
	require.Error(t, err)
	require.Equal(t, 1, codec.cache.len())
}
