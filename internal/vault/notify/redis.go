package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultQueue is the list external mailers pop jobs from.
const DefaultQueue = "passkeep:notifications"

// Job is the envelope pushed onto the queue.
type Job struct {
	Kind     string          `json:"kind"`
	Payload  json.RawMessage `json:"payload"`
	QueuedAt time.Time       `json:"queued_at"`
}

const KindPasswordReset = "password_reset"

// RedisNotifier pushes jobs onto a redis list with RPUSH.
type RedisNotifier struct {
	client *redis.Client
	queue  string
}

var _ Notifier = (*RedisNotifier)(nil)

// NewRedisNotifier connects with options and verifies the connection.
func NewRedisNotifier(ctx context.Context, options *redis.Options, queue string) (*RedisNotifier, error) {
	if queue == "" {
		queue = DefaultQueue
	}

	client := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", options.Addr, err)
	}

	return &RedisNotifier{client: client, queue: queue}, nil
}

func (r *RedisNotifier) PasswordReset(ctx context.Context, n PasswordResetNotice) error {
	return r.push(ctx, KindPasswordReset, n)
}

func (r *RedisNotifier) push(ctx context.Context, kind string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s job: %w", kind, err)
	}

	job, err := json.Marshal(Job{Kind: kind, Payload: raw, QueuedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encode %s job: %w", kind, err)
	}

	if err := r.client.RPush(ctx, r.queue, job).Err(); err != nil {
		return fmt.Errorf("enqueue %s job: %w", kind, err)
	}
	return nil
}

func (r *RedisNotifier) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisNotifier) Close() error {
	return r.client.Close()
}
