package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataKey_Versioned(t *testing.T) {
	assert.Equal(t, "salon:catalog:v0:list", dataKey("salon:catalog", 0, "list"))
	assert.Equal(t, "salon:catalog:v7:cat=Uñas", dataKey("salon:catalog", 7, "cat=Uñas"))
}

func TestNop_AlwaysMisses(t *testing.T) {
	ctx := context.Background()
	var c Cache = Nop{}

	require.NoError(t, c.Set(ctx, "k", []int{1}))
	var dst []int
	hit, err := c.Get(ctx, "k", &dst)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.Bump(ctx))
}

func TestNewRedis_BadURL(t *testing.T) {
	_, err := NewRedis("not a url", "p", 0)
	assert.Error(t, err)
}
