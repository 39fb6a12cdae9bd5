package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/IgorSouzaLima/rjlima/internal/usecase/interfaces"

	"github.com/hibiken/asynq"
)

// Processor is plugged into the asynq worker loop.
type Processor struct {
	storage interfaces.IProofStorage
}

func NewProcessor(storage interfaces.IProofStorage) *Processor {
	return &Processor{storage: storage}
}

// Handler registers the proof cleanup handler.
func (p *Processor) Handler() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(ProofDeleteTask, p.HandleProofDelete)
	return mux
}

func (p *Processor) HandleProofDelete(ctx context.Context, task *asynq.Task) error {
	var payload ProofDeletePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.Path == "" {
		return fmt.Errorf("empty proof path: %w", asynq.SkipRetry)
	}

	if err := p.storage.Delete(ctx, payload.Path); err != nil {
		log.Printf("[proof][worker] delete failed path=%s err=%v", payload.Path, err)
		return err
	}
	log.Printf("[proof][worker] delete success path=%s", payload.Path)
	return nil
}
