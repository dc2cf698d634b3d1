package testutil

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	redismodule "github.com/testcontainers/testcontainers-go/modules/redis"
)

const redisImage = "redis:8-alpine"

// SetupRedisContainer starts a throwaway Redis for integration tests and
// skips the test when no container runtime is available.
func SetupRedisContainer(ctx context.Context, t *testing.T) (*redis.Client, func()) {
	t.Helper()

	defer func() {
		if r := recover(); r != nil {
			t.Skipf("failed to start redis container: %v", r)
		}
	}()

	container, err := redismodule.Run(ctx, redisImage)
	if err != nil {
		t.Skipf("failed to start redis container: %v", err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Skipf("failed to get redis endpoint: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: endpoint,
	})

	cleanup := func() {
		if err := client.Close(); err != nil {
			t.Logf("failed to close redis client: %v", err)
		}

		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	}

	return client, cleanup
}

// ActivityJSON is a small activity listing in the shape the activity
// endpoint serves.
const ActivityJSON = `{
  "activities": [
    {"id": "a1", "user_id": "u1", "username": "alice", "activity_type": "EDIT", "entity_id": "d1", "entity_name": "Budget", "progress": 50, "create_timestamp": 1743494400000, "planned_date_timestamp": 1743753600000},
    {"id": "a2", "user_id": "u1", "username": "alice", "activity_type": "REVIEW", "progress": 0, "create_timestamp": 1743580800000, "planned_date_timestamp": 1743667200000},
    {"id": "a3", "user_id": "u2", "username": "bob", "activity_type": "EDIT", "progress": 100, "create_timestamp": 1743494400000, "completed_date_timestamp": 1743580800000}
  ],
  "total": 3
}`
