package port

import (
	"context"
	"io"
)

// UploadInput encapsulates the parameters needed to upload an object.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
}

// ObjectStorage abstracts cloud object storage, used for settings logos.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (location string, err error)
	Delete(ctx context.Context, bucket, key string) error
}
