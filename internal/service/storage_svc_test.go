package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorageService_Providers(t *testing.T) {
	svc, err := NewStorageService(StorageConfig{Provider: "local", BasePath: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, svc.GetProvider())

	_, err = NewStorageService(StorageConfig{Provider: "cos"})
	assert.Error(t, err)

	_, err = NewStorageService(StorageConfig{Provider: "s3"})
	assert.Error(t, err, "缺少 bucket")
}

func TestLocalStorage_UploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewStorageService(StorageConfig{Provider: "local", BasePath: dir, BaseURL: "/uploads/"})
	require.NoError(t, err)

	url, err := svc.Upload(context.Background(), []byte("hello"), "Photo.PNG", "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	path := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(url, "/uploads/")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, svc.Delete(context.Background(), url))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// 重复删除不报错
	assert.NoError(t, svc.Delete(context.Background(), url))
}

func TestLocalStorage_RejectsForeignPaths(t *testing.T) {
	svc, err := NewStorageService(StorageConfig{Provider: "local", BasePath: t.TempDir()})
	require.NoError(t, err)

	assert.Error(t, svc.Delete(context.Background(), "https://elsewhere.example.com/a.png"))
	assert.Error(t, svc.Delete(context.Background(), "/uploads/../etc/passwd"))
}

func TestLocalStorage_CanceledContext(t *testing.T) {
	svc, err := NewStorageService(StorageConfig{Provider: "local", BasePath: t.TempDir()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Upload(ctx, []byte("x"), "a.png", "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestS3Storage_PublicURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  StorageConfig
		want string
	}{
		{
			name: "aws",
			cfg:  StorageConfig{Bucket: "b", Region: "us-east-1"},
			want: "https://b.s3.us-east-1.amazonaws.com/k/a.png",
		},
		{
			name: "custom endpoint",
			cfg:  StorageConfig{Bucket: "b", Region: "auto", Endpoint: "https://minio.local/"},
			want: "https://minio.local/b/k/a.png",
		},
		{
			name: "cdn",
			cfg:  StorageConfig{Bucket: "b", Region: "auto", CDNDomain: "cdn.example.com"},
			want: "https://cdn.example.com/k/a.png",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.AccessKey, tt.cfg.SecretKey = "ak", "sk"
			s, err := NewS3Storage(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.getPublicURL("k/a.png"))
			assert.Equal(t, "k/a.png", s.extractKey(tt.want))
			assert.Empty(t, s.extractKey("https://other.example.com/k/a.png"))
		})
	}
}

func TestS3Storage_AgainstCompatibleEndpoint(t *testing.T) {
	var (
		mu       sync.Mutex
		requests []string
		bodies   = map[string]string{}
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPut {
			bodies[r.URL.Path] = string(body)
		}
		mu.Unlock()
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s, err := NewS3Storage(StorageConfig{
		Bucket:    "media",
		Region:    "us-east-1",
		AccessKey: "ak",
		SecretKey: "sk",
		Endpoint:  server.URL,
		BasePath:  "/products/",
	})
	require.NoError(t, err)

	url, err := s.Upload(context.Background(), []byte("payload"), "a.jpg", "image/jpeg")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, server.URL+"/media/products/"))

	key := s.extractKey(url)
	require.NoError(t, s.Delete(context.Background(), url))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, requests, 2)
	assert.Equal(t, "PUT /media/"+key, requests[0])
	assert.Equal(t, "DELETE /media/"+key, requests[1])
	assert.Contains(t, bodies["/media/"+key], "payload")

	assert.Error(t, s.Delete(context.Background(), "https://elsewhere/x.png"))
}

func TestGenerateKey(t *testing.T) {
	key := generateKey("", "noext")
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.Len(t, strings.Split(key, "/"), 4)

	key = generateKey("prefix", "A.WEBP")
	assert.True(t, strings.HasPrefix(key, "prefix/"))
	assert.True(t, strings.HasSuffix(key, ".webp"))
}

func TestDetectContentType(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	assert.Equal(t, "image/png", detectContentType(png))
	assert.True(t, strings.HasPrefix(detectContentType([]byte("plain text")), "text/plain"))
}
