package main

import (
	"context"
	"fmt"
	"time"

	"acaradashboard/config"
	"acaradashboard/internal/adapters/submission"
	"acaradashboard/internal/domain"
	mongostore "acaradashboard/internal/repository/mongo"
	"acaradashboard/internal/repository/postgres"
)

const connectTimeout = 10 * time.Second

// openStore connects the configured document store and prepares its indexes
// or schema. The returned func closes the connection.
func openStore(ctx context.Context, cfg *config.Config) (domain.AcaraStore, func(), error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	switch cfg.StoreDriver {
	case "postgres":
		db, err := postgres.Open(ctx, cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return postgres.NewAcaraRepository(db), func() { _ = db.Close() }, nil
	case "mongo":
		client, err := mongostore.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		db := client.Database(cfg.MongoDatabase)
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		return mongostore.NewAcaraStore(db), func() { _ = client.Disconnect(context.Background()) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// openGuard returns the Redis submission guard when REDIS_URL is set and the
// in-memory guard otherwise.
func openGuard(ctx context.Context, cfg *config.Config) (domain.SubmissionGuard, func(), error) {
	if cfg.RedisURL == "" {
		return submission.NewMemoryGuard(cfg.SubmissionTTL), func() {}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	client, err := submission.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	return submission.NewRedisGuard(client, cfg.SubmissionTTL), func() { _ = client.Close() }, nil
}
