package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/chronos/internal/domain"
)

// FileStore persists one ledger to a single file on disk. It is the only
// thing in the program that touches the save file.
type FileStore struct {
	path string
	obs  Observer
}

// NewFileStore creates a store for the given path. A nil observer disables
// tracing.
func NewFileStore(path string, obs Observer) *FileStore {
	if obs == nil {
		obs = NoopObserver{}
	}
	return &FileStore{path: path, obs: obs}
}

// Path returns the save file location.
func (fs *FileStore) Path() string { return fs.path }

// Load reads the ledger from disk. A missing file is a first run and yields
// an empty ledger, not an error.
func (fs *FileStore) Load() (*domain.Ledger, error) {
	started := time.Now()
	data, err := os.ReadFile(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		fs.observe("load", 0, started, true)
		return &domain.Ledger{}, nil
	}
	if err != nil {
		fs.observe("load", 0, started, false)
		return nil, fmt.Errorf("reading %s: %w", fs.path, err)
	}
	led, err := Decode(data)
	if err != nil {
		fs.observe("load", len(data), started, false)
		return nil, fmt.Errorf("loading %s: %w", fs.path, err)
	}
	fs.observe("load", len(data), started, true)
	return led, nil
}

// Save writes the ledger atomically: encode, write a uniquely named temp
// sibling, rename over the target. Parent directories are created as needed.
func (fs *FileStore) Save(led *domain.Ledger) error {
	started := time.Now()
	data, err := Encode(led)
	if err != nil {
		fs.observe("save", 0, started, false)
		return err
	}
	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fs.observe("save", 0, started, false)
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	tmp := fmt.Sprintf("%s.%s.tmp", fs.path, uuid.New().String())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		fs.observe("save", 0, started, false)
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		os.Remove(tmp)
		fs.observe("save", len(data), started, false)
		return fmt.Errorf("replacing %s: %w", fs.path, err)
	}
	fs.observe("save", len(data), started, true)
	return nil
}

func (fs *FileStore) observe(op string, n int, started time.Time, ok bool) {
	fs.obs.OnOpComplete(OpEvent{
		Op:        op,
		Path:      fs.path,
		Bytes:     n,
		LatencyMs: time.Since(started).Milliseconds(),
		Success:   ok,
	})
}
