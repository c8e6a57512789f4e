// Package seed preloads the note collection from files on disk.
package seed

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alucardeht/braze-mcp/internal/config"
	"github.com/alucardeht/braze-mcp/internal/logger"
	"github.com/alucardeht/braze-mcp/internal/store"
)

var log = logger.ForComponent("seed")

// Notes loads every file under cfg.SeedDir matching one of the include
// patterns and stores it as a note keyed by the file name without its
// extension. Returns the number of notes loaded.
func Notes(st *store.Store, cfg config.NotesConfig) (int, error) {
	if cfg.SeedDir == "" {
		return 0, nil
	}

	loaded := 0
	err := filepath.WalkDir(cfg.SeedDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(cfg.SeedDir, path)
		if err != nil {
			return err
		}
		if !matchesAny(cfg.Include, filepath.ToSlash(rel)) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		content, err := DecodeText(data)
		if err != nil {
			log.Warn("skipping undecodable seed file", "path", path, "error", err)
			return nil
		}

		name := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		if err := st.AddNote(name, content); err != nil {
			return err
		}
		loaded++
		return nil
	})
	if err != nil {
		return loaded, err
	}

	log.Info("seeded notes", "dir", cfg.SeedDir, "count", loaded)
	return loaded, nil
}

func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
