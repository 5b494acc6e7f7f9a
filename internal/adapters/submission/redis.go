package submission

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"acaradashboard/internal/domain"
)

// releaseScript deletes the key only while it still holds this submission's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Connect parses a redis:// URL and checks the server is reachable.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

type redisGuard struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisGuard returns a SubmissionGuard shared by every instance using client.
func NewRedisGuard(client redis.UniversalClient, ttl time.Duration) domain.SubmissionGuard {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisGuard{client: client, ttl: ttl}
}

func (g *redisGuard) Begin(ctx context.Context, userID string) (domain.ReleaseFunc, error) {
	k := key(userID)
	token := uuid.NewString()
	ok, err := g.client.SetNX(ctx, k, token, g.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("redis set %s: %w", k, err)
	}
	if !ok {
		return nil, domain.ErrSubmissionInProgress
	}
	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, g.client, []string{k}, token).Err(); err != nil {
			return fmt.Errorf("redis release %s: %w", k, err)
		}
		return nil
	}, nil
}

func (g *redisGuard) State(ctx context.Context, userID string) (domain.SubmissionState, error) {
	n, err := g.client.Exists(ctx, key(userID)).Result()
	if err != nil {
		return "", fmt.Errorf("redis exists: %w", err)
	}
	if n > 0 {
		return domain.SubmissionSubmitting, nil
	}
	return domain.SubmissionIdle, nil
}
