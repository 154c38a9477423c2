package configwatcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"quintet_backend/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, uploads, level string) {
	t.Helper()
	content := "server:\n  mode: debug\n" +
		"database:\n  driver: sqlite\n" +
		"storage:\n  type: local\n  local_path: " + uploads + "\n" +
		"log:\n  level: " + level + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestWatchConfig_Reloads(t *testing.T) {
	dir := t.TempDir()
	uploads := filepath.Join(dir, "uploads")
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, uploads, "info")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 1)
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, path, func(cfg *config.Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// 等待 watcher 就绪后再修改
	time.Sleep(200 * time.Millisecond)
	writeConfig(t, path, uploads, "debug")

	select {
	case cfg := <-reloaded:
		require.Equal(t, "debug", cfg.Log.Level)
	case <-time.After(10 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	require.NoError(t, <-done)
}
