// Package suite boots a throwaway redis container for repository
// integration tests.
package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

const (
	expireSeconds   = 120
	maxWaitDuration = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *redis.Client
}

// New - starts a redis container, waits until it accepts connections, and
// hands back a flushed client. The container is purged on test cleanup
// and hard-killed by docker after expireSeconds as a safety net.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start resource: %v", err)
	}

	_ = resource.Expire(expireSeconds)

	redisHost := resource.GetHostPort(redisPort)

	// The container might not accept connections right away.
	pool.MaxWait = maxWaitDuration

	var client *redis.Client
	if err = pool.Retry(func() error {
		client = redis.NewClient(&redis.Options{
			Addr: redisHost,
		})
		return client.Ping(ctx).Err()
	}); err != nil {
		if purgeErr := pool.Purge(resource); purgeErr != nil {
			t.Fatalf("could not purge resource: %v", purgeErr)
		}

		t.Fatalf("could not connect to redis: %v", err)
	}

	if err = client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush database: %v", err)
	}

	t.Cleanup(func() {
		t.Helper()

		if err = pool.Purge(resource); err != nil {
			t.Fatalf("could not purge resource: %v", err)
		}
	})

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Storage: client,
	}
}
