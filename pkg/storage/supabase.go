package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
)

// SupabaseStore keeps objects in one Supabase Storage bucket. The client
// does not take a context, so cancellation stops at the call boundary.
type SupabaseStore struct {
	client *storage_go.Client
	bucket string
}

func NewSupabaseStore(projectURL, serviceKey, bucket string) *SupabaseStore {
	endpoint := strings.TrimRight(projectURL, "/") + "/storage/v1"
	return &SupabaseStore{
		client: storage_go.NewClient(endpoint, serviceKey, nil),
		bucket: bucket,
	}
}

func (s *SupabaseStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	upsert := true
	opts := storage_go.FileOptions{Upsert: &upsert}
	if contentType != "" {
		opts.ContentType = &contentType
	}

	if _, err := s.client.UploadFile(s.bucket, key, body, opts); err != nil {
		return fmt.Errorf("supabase upload %s/%s: %w", s.bucket, key, err)
	}
	return nil
}

func (s *SupabaseStore) Download(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := s.client.DownloadFile(s.bucket, key)
	if err != nil {
		return nil, fmt.Errorf("supabase download %s/%s: %w", s.bucket, key, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("supabase download %s/%s: %w", s.bucket, key, ErrObjectNotFound)
	}
	return data, nil
}
