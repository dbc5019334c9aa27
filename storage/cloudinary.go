package storage

import (
	"context"
	"io"
	"os"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// rawExtensions are uploaded with the raw resource type so Cloudinary does
// not try to transform them as images
var rawExtensions = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true,
	".xls": true, ".xlsx": true, ".csv": true, ".txt": true,
}

// CloudinaryStore stores attachment blobs in a Cloudinary account
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore builds a store from the CLOUDINARY_* environment
func NewCloudinaryStore() (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return nil, err
	}
	return &CloudinaryStore{cld: cld}, nil
}

// Init is a no-op, Cloudinary folders are created on first upload
func (c *CloudinaryStore) Init() error { return nil }

// Store uploads the file under ecms-files/<folder>
func (c *CloudinaryStore) Store(ctx context.Context, folder string, file io.Reader, originalName, mimeType string) (*Stored, error) {
	resourceType := "auto"
	if rawExtensions[strings.ToLower(path.Ext(originalName))] {
		resourceType = "raw"
	}

	res, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       "ecms-files/" + folder,
		ResourceType: resourceType,
	})
	if err != nil {
		return nil, err
	}

	return &Stored{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
		Size:     int64(res.Bytes),
	}, nil
}

// Delete destroys the blob. When publicID is empty it is derived from the
// delivery URL (folder plus filename without extension).
func (c *CloudinaryStore) Delete(ctx context.Context, url, publicID string) error {
	if publicID == "" {
		publicID = publicIDFromURL(url)
		if publicID == "" {
			return ErrNotFound
		}
	}

	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "raw",
	})
	if err != nil {
		return err
	}
	if res.Result == "not found" {
		return ErrNotFound
	}
	return nil
}

func publicIDFromURL(url string) string {
	parts := strings.Split(url, "/")
	if len(parts) < 3 {
		return ""
	}
	folder := parts[len(parts)-3] + "/" + parts[len(parts)-2]
	name := parts[len(parts)-1]
	if ext := path.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	if name == "" {
		return ""
	}
	return folder + "/" + name
}
