package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"reelstudio/types"
)

const (
	jobKeyPrefix = "reelstudio:job:"
	recentKey    = "reelstudio:jobs:recent"
	recentCap    = 100
	jobTTL       = 7 * 24 * time.Hour
)

// Redis stores job records as JSON values plus a capped recent-ids list,
// so status survives restarts and multiple replicas see the same jobs.
type Redis struct {
	client *redis.Client
}

// NewRedis connects and verifies connectivity with a ping.
func NewRedis(addr string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &Redis{client: client}, nil
}

// Save implements JobStore.
func (r *Redis) Save(ctx context.Context, job types.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	key := jobKeyPrefix + job.ID
	// SetNX makes the first-write check atomic: when replicas race on a new
	// job id, exactly one of them sees isNew and pushes to the recent list.
	isNew, err := r.client.SetNX(ctx, key, data, jobTTL).Result()
	if err != nil {
		return fmt.Errorf("redis setnx: %w", err)
	}
	if !isNew {
		if err := r.client.Set(ctx, key, data, jobTTL).Err(); err != nil {
			return fmt.Errorf("redis set: %w", err)
		}
		return nil
	}

	pipe := r.client.Pipeline()
	pipe.LPush(ctx, recentKey, job.ID)
	pipe.LTrim(ctx, recentKey, 0, recentCap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis recent list: %w", err)
	}
	return nil
}

// Get implements JobStore.
func (r *Redis) Get(ctx context.Context, id string) (*types.Job, error) {
	data, err := r.client.Get(ctx, jobKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var job types.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("unmarshal job: %w", err)
	}
	return &job, nil
}

// Recent implements JobStore, newest first. Expired records are skipped.
func (r *Redis) Recent(ctx context.Context, n int) ([]types.Job, error) {
	if n <= 0 {
		n = recentCap
	}
	ids, err := r.client.LRange(ctx, recentKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange: %w", err)
	}

	jobs := make([]types.Job, 0, len(ids))
	for _, id := range dedupeIDs(ids) {
		job, err := r.Get(ctx, id)
		if err == ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

// dedupeIDs drops repeated ids, keeping first-occurrence order. Lists
// written before the atomic first-write check may carry duplicates.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Close closes the underlying Redis client.
func (r *Redis) Close() error {
	return r.client.Close()
}
