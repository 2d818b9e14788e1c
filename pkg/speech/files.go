package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore manages generated audio files in a temp directory.
type FileStore struct {
	dir    string
	maxAge time.Duration
}

func NewFileStore(dir string, maxAge time.Duration) (*FileStore, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "hrai_audio")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory: %w", err)
	}
	return &FileStore{dir: dir, maxAge: maxAge}, nil
}

func (s *FileStore) Dir() string {
	return s.dir
}

// Save writes data under name. The name must be a bare filename.
func (s *FileStore) Save(name string, data []byte) (string, error) {
	path, err := s.Path(name)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}
	return path, nil
}

// Path resolves name inside the store directory, rejecting traversal.
func (s *FileStore) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid audio filename %q", name)
	}
	return filepath.Join(s.dir, name), nil
}

// Stats returns the number of audio files in the store and their total size.
func (s *FileStore) Stats() (int, int64, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, 0, err
	}

	var count int
	var totalSize int64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		count++
		totalSize += info.Size()
	}
	return count, totalSize, nil
}

// Sweep removes files older than the store's max age and returns the number
// removed.
func (s *FileStore) Sweep() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-s.maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
				log.Warnf("could not sweep audio file %s: %v", entry.Name(), err)
				continue
			}
			removed++
		}
	}
	return removed, nil
}

// StartSweeper sweeps old audio files at a regular interval. It's cancellable
// via the passed context. If interval is 0, this function does nothing.
func (s *FileStore) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval == 0 {
		log.Debug("audio sweeper disabled")
		return
	}

	log.Infof("Starting audio sweeper. Sweeping every %v", interval)
	go func() {
		for {
			select {
			case <-ctx.Done():
				log.Info("Stopping audio sweeper")
				return
			default:
				removed, err := s.Sweep()
				if err != nil {
					log.Errorf("error sweeping audio files: %v", err)
				} else if removed > 0 {
					log.Infof("Swept %d old audio files", removed)
				}
			}
			time.Sleep(interval)
		}
	}()
}
