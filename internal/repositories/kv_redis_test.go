package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisKVStore(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	t.Run("Set and Get", func(t *testing.T) {
		store := NewRedisKVStore(rdb, 0)

		err := store.Set(ctx, "recent_destinations:alice", []byte(`[{"address":"TXabc"}]`))
		assert.NoError(t, err)

		got, err := store.Get(ctx, "recent_destinations:alice")
		assert.NoError(t, err)
		assert.Equal(t, []byte(`[{"address":"TXabc"}]`), got)
	})

	t.Run("Missing key is nil, nil", func(t *testing.T) {
		store := NewRedisKVStore(rdb, 0)

		got, err := store.Get(ctx, "recent_destinations:nobody")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Value expires after TTL", func(t *testing.T) {
		store := NewRedisKVStore(rdb, time.Second)

		err := store.Set(ctx, "recent_destinations:bob", []byte("x"))
		assert.NoError(t, err)

		time.Sleep(1500 * time.Millisecond)

		got, err := store.Get(ctx, "recent_destinations:bob")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
