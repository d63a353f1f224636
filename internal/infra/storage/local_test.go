package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openparish/sacristy/internal/domain"
)

func TestLocalPutGet(t *testing.T) {
	s, err := NewLocal(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "baptisms/key.pdf", "application/pdf", []byte("payload")))

	data, contentType, err := s.Get(ctx, "baptisms/key.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
	assert.Equal(t, "application/pdf", contentType)
}

func TestLocalGetMissing(t *testing.T) {
	s, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	_, _, err = s.Get(context.Background(), "baptisms/absent.pdf")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestLocalContentTypeFallback(t *testing.T) {
	s, err := NewLocal(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	// stored without an extension; type is sniffed on the way out
	require.NoError(t, s.Put(ctx, "communions/noext", "", []byte("%PDF-1.4 minimal")))

	_, contentType, err := s.Get(ctx, "communions/noext")
	require.NoError(t, err)
	assert.NotEmpty(t, contentType)
}
