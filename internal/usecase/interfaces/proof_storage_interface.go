package interfaces

import (
	"context"
	"io"
)

// ProofFile is a delivery photo received from an upload form.
type ProofFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// StoredProof is where an uploaded photo ended up.
type StoredProof struct {
	Path string
	URL  string
}

// IProofStorage abstracts the object store holding delivery proof photos.
//
// Upload keys objects by invoice id and upload time so re-uploads never collide.
// Delete of a missing object is not an error.
// PathFromURL recovers the object key of records that only kept the public URL.
type IProofStorage interface {
	Upload(ctx context.Context, invoiceID string, file ProofFile) (StoredProof, error)
	Delete(ctx context.Context, path string) error
	PathFromURL(url string) (string, error)
}
