package viewstate

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bklyngarment/storefront/internal/models"
)

func sampleDashboard() Dashboard {
	return Dashboard{
		Products: []models.Product{{ID: "p1", Name: "Logo Tee", Price: 35}},
		Lookbook: []models.LookbookItem{{ID: "l1", Title: "Fall"}},
		Videos:   []models.Video{{ID: "v1", Title: "Drop", Active: false}},
	}
}

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStoreWithClient(client, RedisConfig{TTL: 30 * time.Minute}), mr
}

func TestMemoryStoreGetPutDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	_, err := s.Get(ctx, "sid")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "sid", sampleDashboard()))
	got, err := s.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.Products[0].ID)

	require.NoError(t, s.Delete(ctx, "sid"))
	_, err = s.Get(ctx, "sid")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Minute)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Put(ctx, "sid", sampleDashboard()))
	now = now.Add(2 * time.Minute)
	_, err := s.Get(ctx, "sid")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisStore(t)

	_, err := s.Get(ctx, "sid")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "sid", sampleDashboard()))
	assert.True(t, mr.Exists(DefaultPrefix+"sid"))
	assert.Greater(t, mr.TTL(DefaultPrefix+"sid"), time.Duration(0))

	got, err := s.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, sampleDashboard().Videos, got.Videos)

	require.NoError(t, s.Delete(ctx, "sid"))
	assert.False(t, mr.Exists(DefaultPrefix+"sid"))
}

func TestRedisStoreCorruptValue(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisStore(t)
	require.NoError(t, mr.Set(DefaultPrefix+"sid", "not json"))

	_, err := s.Get(ctx, "sid")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNewRedisStorePingFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisStore(context.Background(), RedisConfig{Address: addr})
	assert.Error(t, err)
}
