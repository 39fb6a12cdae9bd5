package interfaces

import "context"

// IProofCleanupQueue schedules retried deletion of proof photos whose
// immediate removal failed.
type IProofCleanupQueue interface {
	EnqueueProofDeletion(ctx context.Context, path string) error
}
