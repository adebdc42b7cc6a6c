package site

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits after the last change before
// rebuilding.
const DefaultDebounce = 500 * time.Millisecond

// Watch calls rebuild after changes under paths settle, until ctx ends.
// Directories are watched recursively. Files are watched through their
// parent directory so editors that replace on save are still seen.
func Watch(ctx context.Context, paths []string, debounce time.Duration, rebuild func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	files := make(map[string]bool)
	var roots []string
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		info, err := os.Stat(abs)
		if os.IsNotExist(err) {
			log.Printf("site: %s not found, not watching", p)
			continue
		} else if err != nil {
			return fmt.Errorf("accessing %s: %w", p, err)
		}
		if !info.IsDir() {
			files[abs] = true
			if err := watcher.Add(filepath.Dir(abs)); err != nil {
				return fmt.Errorf("failed to watch %s: %w", p, err)
			}
			continue
		}
		roots = append(roots, abs)
		addTree(watcher, abs)
	}

	relevant := func(name string) bool {
		if files[name] {
			return true
		}
		for _, r := range roots {
			if rel, err := filepath.Rel(r, name); err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
				return true
			}
		}
		return false
	}

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !relevant(name) {
				continue
			}
			log.Printf("site: change detected: %s (%s)", event.Name, event.Op)

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(name); err == nil && info.IsDir() {
					addTree(watcher, name)
				}
			}

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				if ctx.Err() != nil {
					return
				}
				rebuild()
			})
			mu.Unlock()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("site: watcher error: %v", err)
		}
	}
}

func addTree(watcher *fsnotify.Watcher, root string) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("site: error walking %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				log.Printf("site: failed to watch %s: %v", path, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("site: error walking %s: %v", root, err)
	}
}
