package netx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bucket is a tiny object store keyed by request path.
type bucket struct {
	mu      sync.Mutex
	objects map[string][]byte
	ct      string
}

func (b *bucket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		b.objects[r.URL.Path] = body
		b.ct = r.Header.Get("Content-Type")
	case http.MethodGet:
		data, ok := b.objects[r.URL.Path]
		if !ok {
			http.Error(w, "NoSuchKey", http.StatusNotFound)
			return
		}
		_, _ = w.Write(data)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestUploadDownload(t *testing.T) {
	b := &bucket{objects: map[string][]byte{}}
	ts := httptest.NewServer(b)
	defer ts.Close()
	ctx := context.Background()

	require.NoError(t, Upload(ctx, ts.URL+"/attachments/u1/k?X-Amz-Signature=abc", []byte("blob")))
	assert.Equal(t, "application/octet-stream", b.ct)
	assert.Equal(t, []byte("blob"), b.objects["/attachments/u1/k"])

	got, err := Download(ctx, ts.URL+"/attachments/u1/k?X-Amz-Signature=def")
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), got)

	_, err = Download(ctx, ts.URL+"/attachments/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download failed: 404")
}

func TestUpload_NonOK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	err := Upload(context.Background(), ts.URL, []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload failed: 403")
}

func TestUpload_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	err := Upload(context.Background(), ts.URL, []byte("x"))
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "upload failed")
}

func TestDownload_Cancelled(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Download(ctx, ts.URL)
	assert.ErrorIs(t, err, context.Canceled)
}
