package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, "chatsync.db", c.DatabasePath)
	assert.Equal(t, 3*time.Second, c.ReconnectInterval)
	assert.Equal(t, "downloads", c.DownloadDir)
}

func TestLoad(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"server_endpoint_addr": "www.example:9000",
		"reconnect_interval":   "10s",
		"download_dir":         "/srv/files",
	})

	tests := []struct {
		name string
		args []string
		want Config
	}{
		{name: "defaults", args: nil, want: Config{ServerEndpointAddr: "127.0.0.1:50051", DatabasePath: "chatsync.db", ReconnectInterval: 3 * time.Second, DownloadDir: "downloads"}},
		{name: "json", args: []string{"-config", path}, want: Config{ServerEndpointAddr: "www.example:9000", DatabasePath: "chatsync.db", ReconnectInterval: 10 * time.Second, DownloadDir: "/srv/files"}},
		{name: "flags win", args: []string{"-c", path, "-a", "10.0.0.1:1", "-d", "/tmp/x.db", "-i", "7", "-o", "out", "-unknown"},
			want: Config{ServerEndpointAddr: "10.0.0.1:1", DatabasePath: "/tmp/x.db", ReconnectInterval: 7 * time.Second, DownloadDir: "out"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Load(tt.args)
			assert.Empty(t, cmp.Diff(&tt.want, got))
		})
	}
}

func TestLoad_Panics(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

	require.Panics(t, func() { Load([]string{"-c", bad}) })
	require.Panics(t, func() { Load([]string{"-i", "abc"}) })
	require.Panics(t, func() { Load([]string{"-c", filepath.Join(t.TempDir(), "missing.json")}) })
}
