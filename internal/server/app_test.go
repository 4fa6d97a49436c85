package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/filesmanager/internal/logging"
	"github.com/iudanet/filesmanager/internal/server/config"
	"github.com/iudanet/filesmanager/pkg/api"
)

func TestApp_ServeAndShutdown(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Port:          5000,
		DBPath:        filepath.Join(dir, "files.db"),
		SessionsPath:  filepath.Join(dir, "sessions.db"),
		SessionTTL:    time.Hour,
		StorageFolder: filepath.Join(dir, "files"),
		LogLevel:      "info",
		LogFormat:     "text",
		RateLimitAuth: 20,
	}

	app, err := NewApp(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, app.Close())
	}()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.Serve(ctx, ln)
	}()

	url := fmt.Sprintf("http://%s/status", ln.Addr().String())

	var status api.StatusResponse
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return json.NewDecoder(resp.Body).Decode(&status) == nil
	}, 2*time.Second, 20*time.Millisecond)

	assert.True(t, status.Redis)
	assert.True(t, status.DB)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestNewApp_BadDatabasePath(t *testing.T) {
	cfg := &config.Config{
		DBPath:        filepath.Join(t.TempDir(), "missing", "dir", "files.db"),
		SessionsPath:  filepath.Join(t.TempDir(), "sessions.db"),
		SessionTTL:    time.Hour,
		StorageFolder: t.TempDir(),
	}

	_, err := NewApp(context.Background(), cfg, logging.Discard())
	assert.Error(t, err)
}
