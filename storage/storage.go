// Package storage abstracts where uploaded report attachments live. The
// disk driver keeps files under the local upload directory and serves them
// from the API itself; the cloudinary driver pushes them to Cloudinary.
package storage

import (
	"context"
	"errors"
	"io"

	"github.com/liberia-ecms/court-records-api/config"
)

// ErrNotFound is returned when the blob a delete refers to does not exist
var ErrNotFound = errors.New("blob not found")

// Stored describes a successfully stored blob
type Stored struct {
	URL      string
	PublicID string
	Size     int64
}

// BlobStore stores and deletes attachment blobs
type BlobStore interface {
	// Init prepares the backing store, creating folders or verifying
	// credentials. Call once at startup.
	Init() error
	Store(ctx context.Context, folder string, file io.Reader, originalName, mimeType string) (*Stored, error)
	Delete(ctx context.Context, url, publicID string) error
}

// FromConfig builds the blob store named by conf.StorageDriver
func FromConfig(conf *config.Config, folders ...string) (BlobStore, error) {
	switch conf.StorageDriver {
	case "cloudinary":
		return NewCloudinaryStore()
	case "disk", "":
		return NewDiskStore(conf.UploadDir, conf.BaseURL, folders...), nil
	default:
		return nil, errors.New("unknown storage driver: " + conf.StorageDriver)
	}
}
