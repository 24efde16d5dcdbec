package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
)

// ErrObjectExists is returned by Put when the key is already taken. Result
// files are never overwritten.
var ErrObjectExists = errors.New("object already exists")

// ObjectStore is the durable home of result documents. Put refuses to
// overwrite; Delete is best-effort and tolerates already-missing keys.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, keys ...string) error
}

type GCSStore struct {
	client *gcs.Client
	bucket string
}

func NewGCSStore(ctx context.Context, bucket string) (*GCSStore, error) {
	if bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("init storage client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

func (s *GCSStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	obj := s.client.Bucket(s.bucket).Object(key).If(gcs.Conditions{DoesNotExist: true})
	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusPreconditionFailed {
			return "", ErrObjectExists
		}
		return "", err
	}
	return key, nil
}

func (s *GCSStore) Delete(ctx context.Context, keys ...string) error {
	var firstErr error
	for _, key := range keys {
		err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
		if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
			if firstErr == nil {
				firstErr = fmt.Errorf("delete %s: %w", key, err)
			}
		}
	}
	return firstErr
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
