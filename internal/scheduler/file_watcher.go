package scheduler

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MrSnakeDoc/tabgen/internal/logger"
	"github.com/MrSnakeDoc/tabgen/internal/utils"
)

// DefaultDebounce absorbs the burst of events editors emit for one save.
const DefaultDebounce = 300 * time.Millisecond

// RebuildFunc regenerates all pages.
type RebuildFunc func(ctx context.Context) error

// FileWatcher reruns a rebuild whenever one of its watched files changes
type FileWatcher struct {
	watcher       *fsnotify.Watcher
	files         map[string]bool
	rebuild       RebuildFunc
	logger        logger.Logger
	debounce      time.Duration
	pending       chan struct{}
	manualTrigger <-chan struct{}
	stopCh        chan struct{}
	stopOnce      sync.Once
	done          chan struct{}
}

// NewFileWatcher watches files (through their parent directories, as
// fsnotify requires) and calls rebuild on change.
func NewFileWatcher(
	files []string,
	rebuild RebuildFunc,
	log logger.Logger,
	debounce time.Duration,
	manualTrigger <-chan struct{},
) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher:       w,
		files:         make(map[string]bool, len(files)),
		rebuild:       rebuild,
		logger:        log,
		debounce:      debounce,
		pending:       make(chan struct{}, 1),
		manualTrigger: manualTrigger,
		stopCh:        make(chan struct{}),
		done:          make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		fw.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	return fw, nil
}

// Start runs an initial rebuild, then watches in the background
func (fw *FileWatcher) Start(ctx context.Context) error {
	if err := fw.rebuild(ctx); err != nil {
		_ = fw.watcher.Close()
		close(fw.done)
		return fmt.Errorf("initial rebuild failed: %w", err)
	}

	go fw.loop(ctx)
	return nil
}

func (fw *FileWatcher) loop(ctx context.Context) {
	defer close(fw.done)
	defer utils.MustClose(fw.watcher, fw.logger, "file watcher")

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !fw.relevant(event) {
				continue
			}
			fw.logger.Debug("file change detected",
				logger.String("file", event.Name), logger.String("op", event.Op.String()))
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(fw.debounce, fw.schedule)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Error("file watcher error", logger.Error(err))
		case <-fw.pending:
			fw.runRebuild(ctx)
		case <-fw.manualTrigger:
			fw.logger.Info("manual rebuild triggered")
			fw.runRebuild(ctx)
		case <-fw.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (fw *FileWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	return fw.files[filepath.Clean(event.Name)]
}

// schedule queues one rebuild; extra requests collapse into the queued one.
func (fw *FileWatcher) schedule() {
	select {
	case fw.pending <- struct{}{}:
	default:
	}
}

func (fw *FileWatcher) runRebuild(ctx context.Context) {
	if err := fw.rebuild(ctx); err != nil {
		fw.logger.Error("failed to rebuild pages", logger.Error(err))
	}
}

// Stop stops the watcher; safe to call more than once
func (fw *FileWatcher) Stop() {
	fw.stopOnce.Do(func() { close(fw.stopCh) })
}

// Done is closed once the watch loop has exited.
func (fw *FileWatcher) Done() <-chan struct{} {
	return fw.done
}
