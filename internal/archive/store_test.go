package archive

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatgrid/heatpumpd/internal/config"
)

func TestFSStoreRoundTrip(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "abc", []byte(`{"id":"abc"}`)))

	data, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"abc"}`, string(data))

	_, err = store.Load(ctx, "missing")
	assert.True(t, errors.Is(err, ErrReportNotFound))
}

func TestNewFSStoreRequiresDir(t *testing.T) {
	_, err := NewFSStore("")
	assert.Error(t, err)
}

func TestParseEndpoint(t *testing.T) {
	host, secure, err := parseEndpoint("s3.example.com:9000")
	require.NoError(t, err)
	assert.Equal(t, "s3.example.com:9000", host)
	assert.True(t, secure, "bare endpoints default to TLS")

	host, secure, err = parseEndpoint("http://localhost:9000")
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", host)
	assert.False(t, secure)

	host, secure, err = parseEndpoint("https://s3.example.com")
	require.NoError(t, err)
	assert.Equal(t, "s3.example.com", host)
	assert.True(t, secure)

	_, _, err = parseEndpoint("ftp://s3.example.com")
	assert.Error(t, err)
}

func TestNewS3StoreValidation(t *testing.T) {
	_, err := NewS3Store(nil)
	assert.Error(t, err)

	_, err = NewS3Store(&config.ArchiveConfig{Endpoint: "s3.example.com"})
	assert.Error(t, err, "missing bucket and credentials")
}
