// Package blobstore talks to the external object store documents and images
// are uploaded to. The store is specified only at this interface; everything
// behind the returned public URL is someone else's problem.
package blobstore

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"jobboard-api/config"
)

// Store uploads a blob and returns its public URL.
type Store interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// HTTPStore implements Store against a Supabase-storage-style REST endpoint:
// POST {endpoint}/object/{bucket}/{key} with the service key as bearer auth,
// public URL {endpoint}/object/public/{bucket}/{key}.
type HTTPStore struct {
	endpoint   string
	bucket     string
	serviceKey string
	client     *http.Client
}

// NewHTTPStore creates a blob store client from the uploads configuration.
func NewHTTPStore(cfg config.UploadsConfig) *HTTPStore {
	return &HTTPStore{
		endpoint:   cfg.Endpoint,
		bucket:     cfg.Bucket,
		serviceKey: cfg.ServiceKey,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

var _ Store = (*HTTPStore)(nil)

// Upload relays the file to the store under a timestamped key and returns
// the public URL. The call is synchronous and is not retried.
func (s *HTTPStore) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("pdfs/%d-%s", time.Now().UnixMilli(), filename)

	uploadURL := fmt.Sprintf("%s/object/%s/%s", s.endpoint, s.bucket, url.PathEscape(key))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "3600")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("Blob store upload failed for %s: %v", key, err)
		return "", fmt.Errorf("blob store upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("Blob store rejected upload for %s: status %d, body %q", key, resp.StatusCode, respBody)
		return "", fmt.Errorf("blob store rejected upload: status %d", resp.StatusCode)
	}

	publicURL := fmt.Sprintf("%s/object/public/%s/%s", s.endpoint, s.bucket, url.PathEscape(key))
	log.Printf("Uploaded %s to blob store", key)
	return publicURL, nil
}
