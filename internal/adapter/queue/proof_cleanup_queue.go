package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IgorSouzaLima/rjlima/internal/usecase/interfaces"

	"github.com/hibiken/asynq"
)

const (
	// ProofDeleteTask removes a proof photo whose immediate deletion failed.
	ProofDeleteTask = "proof:delete"

	proofDeleteMaxRetry = 10
	proofDeleteTimeout  = 30 * time.Second
)

type ProofDeletePayload struct {
	Path string `json:"path"`
}

type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ProofCleanupQueue schedules proof photo deletions on Redis through asynq.
type ProofCleanupQueue struct {
	client taskEnqueuer
}

var _ interfaces.IProofCleanupQueue = (*ProofCleanupQueue)(nil)

func NewProofCleanupQueue(client *asynq.Client) *ProofCleanupQueue {
	return &ProofCleanupQueue{client: client}
}

func (q *ProofCleanupQueue) EnqueueProofDeletion(ctx context.Context, path string) error {
	task, err := NewProofDeleteTask(path)
	if err != nil {
		return err
	}
	if _, err := q.client.EnqueueContext(ctx, task, asynq.MaxRetry(proofDeleteMaxRetry), asynq.Timeout(proofDeleteTimeout)); err != nil {
		return fmt.Errorf("enqueue proof delete task: %w", err)
	}
	return nil
}

func NewProofDeleteTask(path string) (*asynq.Task, error) {
	data, err := json.Marshal(ProofDeletePayload{Path: path})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return asynq.NewTask(ProofDeleteTask, data), nil
}
