package worker

// dlq.go — Dead Letter Queue
// Jobs that exceed the maximum retry count are moved here for manual
// inspection. Uses a Redis list per source queue: dlq:{original_queue}

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const DLQPrefix = "dlq:"

// DLQEntry wraps a failed job with metadata for debugging.
type DLQEntry struct {
	Job      Job    `json:"job"`
	Queue    string `json:"queue"`
	Error    string `json:"error"`
	FailedAt string `json:"failed_at"`
}

// PushToDLQ stores an exhausted job under dlq:{queue}.
func PushToDLQ(ctx context.Context, rdb *redis.Client, queue string, job Job, cause error) {
	entry := DLQEntry{
		Job:      job,
		Queue:    queue,
		Error:    cause.Error(),
		FailedAt: time.Now().Format(time.RFC3339),
	}
	encoded, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Msg("dlq: failed to marshal entry")
		return
	}
	if err := rdb.LPush(ctx, DLQPrefix+queue, encoded).Err(); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: push failed")
	}
}

// DLQLength reports how many dead jobs a queue has accumulated (health endpoint).
func DLQLength(ctx context.Context, rdb *redis.Client, queue string) int64 {
	n, err := rdb.LLen(ctx, DLQPrefix+queue).Result()
	if err != nil {
		return 0
	}
	return n
}
