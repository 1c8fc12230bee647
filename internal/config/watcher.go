package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file when it changes on disk.
type Watcher struct {
	fw   *fsnotify.Watcher
	path string
	done chan struct{}
}

// Watch starts watching the config file's directory and invokes onReload
// with the freshly parsed config after each write. Editors that replace
// the file (rename+create) are handled by watching the directory rather
// than the file itself. Reload errors are reported through onError and
// the previous config stays in effect.
func Watch(path string, onReload func(*Config), onError func(error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{fw: fw, path: path, done: make(chan struct{})}
	go w.loop(onReload, onError)
	return w, nil
}

func (w *Watcher) loop(onReload func(*Config), onError func(error)) {
	// Editors fire several events per save; coalesce them.
	var pending *time.Timer
	reload := func() {
		cfg, err := LoadFrom(w.path)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onReload(cfg)
	}

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(100*time.Millisecond, reload)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
