package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// UploadPrefix is the logical folder every uploaded file reference lives under.
const UploadPrefix = "private/uploads/"

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrInvalidName    = errors.New("invalid file name")
)

// BlobStore is the external storage provider holding uploaded files.
type BlobStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
}

// ReferenceFor builds the file reference for an uploaded file. Only the base
// name of filename is kept.
func ReferenceFor(filename string) (string, error) {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "" || base == "." || base == ".." || base == "/" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, filename)
	}
	return UploadPrefix + base, nil
}

// KeyFromReference strips the upload prefix so the remainder can be requested
// from the store.
func KeyFromReference(ref string) string {
	return strings.TrimPrefix(strings.TrimPrefix(ref, "/"), UploadPrefix)
}
