package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/erickfunier/pdftotext-worker/internal/domain/queue"
	"github.com/redis/go-redis/v9"
)

// RedisQueueService implements queue.QueueService using Redis lists
type RedisQueueService struct {
	client         *redis.Client
	dequeueTimeout time.Duration
}

// NewRedisQueueService creates a new Redis queue service. Dequeue blocks for
// at most dequeueTimeout before giving up.
func NewRedisQueueService(client *redis.Client, dequeueTimeout time.Duration) *RedisQueueService {
	return &RedisQueueService{client: client, dequeueTimeout: dequeueTimeout}
}

func queueKey(name string) string {
	return fmt.Sprintf("queue:%s", name)
}

func (s *RedisQueueService) Enqueue(ctx context.Context, job *queue.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}

	return s.client.LPush(ctx, queueKey(job.Queue), data).Err()
}

func (s *RedisQueueService) Dequeue(ctx context.Context, queueName string) (*queue.Job, error) {
	result, err := s.client.BRPop(ctx, s.dequeueTimeout, queueKey(queueName)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if len(result) < 2 {
		return nil, nil
	}

	var job queue.Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		return nil, fmt.Errorf("decode queued job: %w", err)
	}

	return &job, nil
}
