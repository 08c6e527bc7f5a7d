package cache_test

import (
	"context"
	"errors"
	"petstay/infras/otel/mocks"
	"petstay/shared/cache"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type availability struct {
	Dog int `json:"dog"`
	Cat int `json:"cat"`
}

func newCache(t *testing.T) (cache.RedisCache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	return cache.NewRedisCache(client, mocks.NewOtel()), mock
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	c, mock := newCache(t)
	ctx := context.Background()

	mock.ExpectSet("room:availability", []byte(`{"dog":9,"cat":10}`), 300*time.Second).SetVal("OK")
	mock.ExpectGet("room:availability").SetVal(`{"dog":9,"cat":10}`)

	require.NoError(t, c.Save(ctx, "room:availability", availability{Dog: 9, Cat: 10}, 300))

	var got availability
	require.NoError(t, c.Get(ctx, "room:availability", &got))
	assert.Equal(t, availability{Dog: 9, Cat: 10}, got)
}

func TestRedisCache_SaveWithoutExpiry(t *testing.T) {
	c, mock := newCache(t)

	mock.ExpectSet("stats:latest", []byte(`{"dog":1,"cat":0}`), 0).SetVal("OK")

	assert.NoError(t, c.Save(context.Background(), "stats:latest", availability{Dog: 1}, 0))
}

func TestRedisCache_GetString(t *testing.T) {
	c, mock := newCache(t)

	mock.ExpectGet("token").SetVal("raw-value")

	var got string
	require.NoError(t, c.Get(context.Background(), "token", &got))
	assert.Equal(t, "raw-value", got)
}

func TestRedisCache_GetMiss(t *testing.T) {
	c, mock := newCache(t)

	mock.ExpectGet("booking:get:B1").RedisNil()

	var got availability
	err := c.Get(context.Background(), "booking:get:B1", &got)

	assert.ErrorIs(t, err, cache.Nil)
}

func TestRedisCache_Clear(t *testing.T) {
	c, mock := newCache(t)

	mock.ExpectScan(0, "booking*", 100).SetVal([]string{"booking:get:B1", "booking:gets:1"}, 42)
	mock.ExpectDel("booking:get:B1", "booking:gets:1").SetVal(2)
	mock.ExpectScan(42, "booking*", 100).SetVal([]string{}, 0)

	assert.NoError(t, c.Clear(context.Background(), "booking*"))
}

func TestRedisCache_ClearScanFailure(t *testing.T) {
	c, mock := newCache(t)

	mock.ExpectScan(0, "room*", 100).SetErr(errors.New("LOADING"))

	assert.ErrorContains(t, c.Clear(context.Background(), "room*"), "failed to scan cache keys")
}

func TestRedisCache_Increment(t *testing.T) {
	c, mock := newCache(t)
	ctx := context.Background()

	mock.ExpectIncr("limiter:10.0.0.1:curl").SetVal(1)
	mock.ExpectExpire("limiter:10.0.0.1:curl", 60*time.Second).SetVal(true)
	mock.ExpectIncr("limiter:10.0.0.1:curl").SetVal(2)

	first, err := c.Increment(ctx, "limiter:10.0.0.1:curl", 60)
	require.NoError(t, err)
	assert.EqualValues(t, 1, first)

	second, err := c.Increment(ctx, "limiter:10.0.0.1:curl", 60)
	require.NoError(t, err)
	assert.EqualValues(t, 2, second)
}

func TestRedisCache_Publish(t *testing.T) {
	c, mock := newCache(t)

	mock.ExpectPublish("petstay:admin:stats", []byte(`{"dog":3,"cat":4}`)).SetVal(1)

	assert.NoError(t, c.Publish(context.Background(), "petstay:admin:stats", availability{Dog: 3, Cat: 4}))
}
