package domain

import (
	"context"
	"io"
)

// BlobStore is the storage backend for hosted avatars. Avatars are public
// objects addressed by stable keys, so no presigning surface is needed.
type BlobStore interface {
	// UploadFile writes the object and returns its public URL. Uploading to
	// an existing key overwrites it.
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)

	// DeleteFile removes the object by key.
	DeleteFile(ctx context.Context, key string) error

	// GetKeyFromURL extracts the storage key from a public URL.
	GetKeyFromURL(url string) (string, error)
}
