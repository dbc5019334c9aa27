package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore writes attachment blobs under root/<folder>/ and serves them
// from baseURL/uploads/<folder>/<name>
type DiskStore struct {
	root    string
	baseURL string
	folders []string
}

// NewDiskStore creates a disk store rooted at root
func NewDiskStore(root, baseURL string, folders ...string) *DiskStore {
	return &DiskStore{root: root, baseURL: strings.TrimRight(baseURL, "/"), folders: folders}
}

// Root returns the upload directory the store writes under
func (d *DiskStore) Root() string { return d.root }

// Init creates the upload directory tree
func (d *DiskStore) Init() error {
	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return err
	}
	for _, folder := range d.folders {
		if err := os.MkdirAll(filepath.Join(d.root, folder), 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Store writes the file under a random name, keeping the original extension
func (d *DiskStore) Store(ctx context.Context, folder string, file io.Reader, originalName, mimeType string) (*Stored, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	dst, err := os.Create(filepath.Join(d.root, folder, name))
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	size, err := io.Copy(dst, file)
	if err != nil {
		os.Remove(dst.Name())
		return nil, err
	}

	return &Stored{
		URL:  d.baseURL + "/uploads/" + folder + "/" + name,
		Size: size,
	}, nil
}

// Delete removes the blob the url points at. Returns ErrNotFound when the
// file is already gone.
func (d *DiskStore) Delete(ctx context.Context, url, publicID string) error {
	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return ErrNotFound
	}
	folder, name := parts[len(parts)-2], parts[len(parts)-1]
	// refuse anything that could escape the upload root
	if strings.Contains(folder, "..") || strings.Contains(name, "..") || name == "" {
		return ErrNotFound
	}
	err := os.Remove(filepath.Join(d.root, folder, name))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}
