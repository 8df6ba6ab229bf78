// internal/common/database/redis_test.go
package database

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisClientGetSet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}
	ctx := context.Background()

	mock.ExpectSet("lead:profile:acme", "cached", 15*time.Minute).SetVal("OK")
	mock.ExpectGet("lead:profile:acme").SetVal("cached")

	require.NoError(t, client.Set(ctx, "lead:profile:acme", "cached", 15*time.Minute))

	val, err := client.Get(ctx, "lead:profile:acme")
	require.NoError(t, err)
	assert.Equal(t, "cached", val)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClientGetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectGet("lead:profile:missing").RedisNil()

	_, err := client.Get(context.Background(), "lead:profile:missing")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClientDel(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectDel("a", "b").SetVal(2)

	require.NoError(t, client.Del(context.Background(), "a", "b"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
