// Package storage holds the certificate blob backends: a local filesystem
// directory for single-host deployments and an S3-compatible bucket for
// everything else.
package storage

import (
	"context"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/openparish/sacristy/internal/domain"
)

type LocalStore struct {
	dir string
}

func NewLocal(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "storage: create upload dir")
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "storage: create subdir")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "storage: write %s", key)
	}
	return nil
}

func (s *LocalStore) Get(ctx context.Context, key string) ([]byte, string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.FromSlash(key)))
	if os.IsNotExist(err) {
		return nil, "", domain.NotFoundError{Resource: "certificate file"}
	}
	if err != nil {
		return nil, "", errors.Wrapf(err, "storage: read %s", key)
	}

	// content type is not persisted on disk; derive it on the way out
	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}
