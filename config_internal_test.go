package sat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixed1000Key(t *testing.T) {
	require.Equal(t, int32(2000), fixed1000Key(2.0004))
	require.Equal(t, int32(2000), fixed1000Key(2.0001))
	require.Equal(t, int32(-1500), fixed1000Key(-1.5))
	require.Equal(t, int32(0), fixed1000Key(math.NaN()))
	require.Equal(t, int32(math.MaxInt32), fixed1000Key(4e6))
	require.Equal(t, int32(math.MaxInt32), fixed1000Key(math.Inf(1)))
	require.Equal(t, int32(math.MinInt32), fixed1000Key(-4e6))
	require.Equal(t, int32(math.MinInt32), fixed1000Key(math.Inf(-1)))
}
