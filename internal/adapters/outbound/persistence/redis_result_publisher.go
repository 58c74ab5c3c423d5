package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/erickfunier/pdftotext-worker/internal/domain/queue"
	"github.com/redis/go-redis/v9"
)

// RedisResultPublisher implements queue.ResultPublisher. Each terminal result
// is stored under result:<id> for late readers and published on
// results:<queue> for live subscribers.
type RedisResultPublisher struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisResultPublisher creates a publisher whose stored results expire after ttl
func NewRedisResultPublisher(client *redis.Client, ttl time.Duration) *RedisResultPublisher {
	return &RedisResultPublisher{client: client, ttl: ttl}
}

// ResultKey is the key holding the latest result of a job
func ResultKey(jobID string) string {
	return fmt.Sprintf("result:%s", jobID)
}

// ResultChannel is the pub/sub channel carrying results of a queue
func ResultChannel(queueName string) string {
	return fmt.Sprintf("results:%s", queueName)
}

func (p *RedisResultPublisher) Publish(ctx context.Context, job *queue.Job) error {
	data, err := json.Marshal(queue.NewResult(job))
	if err != nil {
		return err
	}

	pipe := p.client.TxPipeline()
	pipe.Set(ctx, ResultKey(job.ID.String()), data, p.ttl)
	pipe.Publish(ctx, ResultChannel(job.Queue), data)
	_, err = pipe.Exec(ctx)
	return err
}
