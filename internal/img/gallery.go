// Package img handles everything between the filesystem and the GPU:
// directory scanning and watching, header-only dimension probing, full
// decodes into uploaded textures, and thumbnail generation.
package img

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fsnotify/fsnotify"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// ScanDir lists the image files directly inside dir, sorted by name.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan gallery %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Watcher rescans a gallery directory when its contents change. Events
// are debounced so an export dropping twenty files produces one rescan.
type Watcher struct {
	dir      string
	fsw      *fsnotify.Watcher
	debounce *debouncer
	done     chan struct{}
}

// WatchDir starts watching dir. onChange receives the fresh file list
// from the watcher goroutine after every settled burst of events.
func WatchDir(dir string, onChange func([]string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch gallery %s: %w", dir, err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch gallery %s: %w", dir, err)
	}

	w := &Watcher{
		dir:      dir,
		fsw:      fsw,
		debounce: newDebouncer(rescanDebounce),
		done:     make(chan struct{}),
	}
	go w.run(onChange)
	return w, nil
}

func (w *Watcher) run(onChange func([]string)) {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) == 0 {
				continue
			}
			w.debounce.trigger(func() {
				paths, err := ScanDir(w.dir)
				if err != nil {
					log.Printf("[WARN] gallery rescan: %v", err)
					return
				}
				onChange(paths)
			})
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("[WARN] gallery watcher: %v", err)
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher and any pending rescan.
func (w *Watcher) Close() error {
	close(w.done)
	w.debounce.cancel()
	return w.fsw.Close()
}
