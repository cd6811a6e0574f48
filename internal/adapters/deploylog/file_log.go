package deploylog

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/tokenswap/tokenswap-deploy/internal/domain"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/config"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/models"
	"github.com/tokenswap/tokenswap-deploy/internal/usecase"
)

// FileLog appends deployment records to a shared text file
type FileLog struct {
	path string
}

// NewFileLog creates a log at cfg.Log.Path, relative paths resolved against the project root
func NewFileLog(cfg *config.RuntimeConfig) *FileLog {
	path := cfg.Log.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.ProjectRoot, path)
	}
	return &FileLog{path: path}
}

// Path returns the resolved log file path
func (l *FileLog) Path() string {
	return l.path
}

// Append writes the entry line and a blank line. Existing content is never truncated.
func (l *FileLog) Append(ctx context.Context, entry *models.DeploymentLogEntry) error {
	lock := flock.New(l.path + ".lock")
	if err := lock.Lock(); err != nil {
		return &domain.IOError{Op: "lock", Path: l.path, Err: err}
	}
	defer func() {
		_ = lock.Unlock()
	}()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &domain.IOError{Op: "open", Path: l.path, Err: err}
	}
	defer f.Close()

	if _, err := f.WriteString(entry.Record()); err != nil {
		return &domain.IOError{Op: "write", Path: l.path, Err: err}
	}

	if err := f.Sync(); err != nil {
		return &domain.IOError{Op: "sync", Path: l.path, Err: err}
	}

	return nil
}

// Ensure FileLog implements the interface
var _ usecase.DeploymentLog = (*FileLog)(nil)
