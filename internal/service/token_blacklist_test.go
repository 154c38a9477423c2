package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenBlacklist(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	b := NewMemoryTokenBlacklist()
	b.now = func() time.Time { return now }

	require.NoError(t, b.Revoke(ctx, "a", time.Minute))
	require.NoError(t, b.Revoke(ctx, "expired-already", 0))

	revoked, err := b.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = b.IsRevoked(ctx, "expired-already")
	require.NoError(t, err)
	assert.False(t, revoked)

	now = now.Add(2 * time.Minute)
	revoked, err = b.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryTokenBlacklist_PrunesOnRevoke(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	b := NewMemoryTokenBlacklist()
	b.now = func() time.Time { return now }

	require.NoError(t, b.Revoke(ctx, "old", time.Second))
	now = now.Add(time.Hour)
	require.NoError(t, b.Revoke(ctx, "new", time.Minute))

	assert.Len(t, b.revoked, 1)
	assert.Contains(t, b.revoked, "new")
}
