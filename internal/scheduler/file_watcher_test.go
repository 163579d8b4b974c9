package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MrSnakeDoc/tabgen/internal/logger"
)

func waitForCount(t *testing.T, counter *atomic.Int32, want int32) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if counter.Load() >= want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("rebuild count = %d, want >= %d", counter.Load(), want)
}

func TestFileWatcher_RebuildsOnChange(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "tabs.yaml")
	other := filepath.Join(dir, "unrelated.txt")
	if err := os.WriteFile(watched, []byte("[]"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	var count atomic.Int32
	rebuild := func(context.Context) error {
		count.Add(1)
		return nil
	}

	fw, err := NewFileWatcher([]string{watched}, rebuild, logger.NewNop(), 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := fw.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer fw.Stop()

	if count.Load() != 1 {
		t.Fatalf("expected initial rebuild, count = %d", count.Load())
	}

	// Changes to other files in the same directory are ignored.
	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	time.Sleep(100 * time.Millisecond)
	if count.Load() != 1 {
		t.Errorf("unrelated file triggered rebuild, count = %d", count.Load())
	}

	if err := os.WriteFile(watched, []byte("- title: Inbox\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	waitForCount(t, &count, 2)
}

func TestFileWatcher_ManualTrigger(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "template.html")
	if err := os.WriteFile(watched, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	var count atomic.Int32
	trigger := make(chan struct{}, 1)
	fw, err := NewFileWatcher([]string{watched}, func(context.Context) error {
		count.Add(1)
		return nil
	}, logger.NewNop(), time.Hour, trigger)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}

	if err := fw.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	trigger <- struct{}{}
	waitForCount(t, &count, 2)

	fw.Stop()
	fw.Stop()
	select {
	case <-fw.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestFileWatcher_InitialRebuildError(t *testing.T) {
	dir := t.TempDir()
	wantErr := errors.New("template missing")

	fw, err := NewFileWatcher([]string{filepath.Join(dir, "tabs.yaml")}, func(context.Context) error {
		return wantErr
	}, logger.NewNop(), DefaultDebounce, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}

	err = fw.Start(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("Start() error = %v, want %v", err, wantErr)
	}
	select {
	case <-fw.Done():
	default:
		t.Error("Done() should be closed after a failed start")
	}
}

func TestFileWatcher_StopsOnContextCancel(t *testing.T) {
	dir := t.TempDir()
	fw, err := NewFileWatcher([]string{filepath.Join(dir, "tabs.yaml")}, func(context.Context) error {
		return nil
	}, logger.NewNop(), DefaultDebounce, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := fw.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	cancel()

	select {
	case <-fw.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestNewFileWatcher_MissingDirectory(t *testing.T) {
	_, err := NewFileWatcher([]string{"/nonexistent/dir/tabs.yaml"}, func(context.Context) error {
		return nil
	}, logger.NewNop(), DefaultDebounce, nil)
	if err == nil {
		t.Error("expected error watching a missing directory")
	}
}
