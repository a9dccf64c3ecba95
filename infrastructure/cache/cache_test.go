package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-manager-api/internal/config"
)

func TestNew_DisabledReturnsNop(t *testing.T) {
	c, err := New(config.Redis{Enabled: false})

	require.NoError(t, err)
	assert.IsType(t, Nop{}, c)
}

func TestNew_UnreachableRedis(t *testing.T) {
	_, err := New(config.Redis{Enabled: true, Addr: "127.0.0.1:1"})

	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	ctx := context.Background()
	c := Nop{}

	_, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	ok, err := c.SetNX(ctx, "k", []byte("v"), time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "sem Redis todo webhook é tratado como novo")

	n, err := c.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Zero(t, n)
}
