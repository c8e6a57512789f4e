package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/alucardeht/braze-mcp/internal/logger"
)

var log = logger.ForComponent("config")

// Credentials is the shape of the watched credentials file.
type Credentials struct {
	APIToken string `yaml:"api_token"`
	BaseURL  string `yaml:"base_url"`
}

// CredentialsWatcher reloads the credentials file whenever it changes and
// hands the parsed result to the apply callback. Editors replace files
// rather than write in place, so the watch covers the parent directory and
// events are debounced.
type CredentialsWatcher struct {
	path      string
	apply     func(Credentials)
	fsWatcher *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer
}

const debounceWindow = 300 * time.Millisecond

func NewCredentialsWatcher(path string, apply func(Credentials)) (*CredentialsWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return &CredentialsWatcher{
		path:      path,
		apply:     apply,
		fsWatcher: fsWatcher,
	}, nil
}

// Run processes events until ctx is cancelled.
func (w *CredentialsWatcher) Run(ctx context.Context) {
	defer w.fsWatcher.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warn("credentials watcher error", "error", err)
		}
	}
}

func (w *CredentialsWatcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceWindow, func() {
		if err := w.reload(); err != nil {
			log.Warn("failed to reload credentials", "path", w.path, "error", err)
		}
	})
}

func (w *CredentialsWatcher) reload() error {
	creds, err := LoadCredentials(w.path)
	if err != nil {
		return err
	}
	if creds.APIToken == "" {
		return fmt.Errorf("credentials file has no api_token")
	}

	w.apply(creds)
	log.Info("credentials reloaded", "path", w.path)
	return nil
}

// LoadCredentials parses a credentials file.
func LoadCredentials(path string) (Credentials, error) {
	var creds Credentials

	data, err := os.ReadFile(path)
	if err != nil {
		return creds, err
	}
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return creds, fmt.Errorf("failed to parse credentials: %w", err)
	}
	return creds, nil
}
