// Package upload persists incoming multipart files under a sanitized
// name in a shared directory.
package upload

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"shetkarai/internal/errors"
)

// Saver writes uploaded files into Dir, accepting only the configured
// extensions. Same-named files are silently overwritten.
type Saver struct {
	dir     string
	allowed map[string]bool
}

// NewSaver creates a Saver for dir that accepts the given extensions
// (lower-case, without dot).
func NewSaver(dir string, extensions []string) *Saver {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = true
	}
	return &Saver{dir: dir, allowed: allowed}
}

// Dir returns the upload directory.
func (s *Saver) Dir() string {
	return s.dir
}

// Allowed reports whether filename carries an accepted extension.
func (s *Saver) Allowed(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	return s.allowed[strings.ToLower(filename[idx+1:])]
}

// Save writes the uploaded file under its sanitized name and returns
// the path. A missing or disallowed extension yields a VALIDATION_ERROR.
func (s *Saver) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil || !s.Allowed(fh.Filename) {
		return "", errors.ValidationError("invalid file format")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create upload directory")
	}

	src, err := fh.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	path := filepath.Join(s.dir, SanitizeFilename(fh.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to create file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", errors.Wrap(err, "failed to write file")
	}
	return path, nil
}

// SanitizeFilename strips any directory components and replaces
// characters outside [A-Za-z0-9._-] with underscores.
func SanitizeFilename(name string) string {
	name = filepath.Base(filepath.ToSlash(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	sanitized := strings.Trim(b.String(), ".")
	if sanitized == "" {
		sanitized = "upload"
	}
	return sanitized
}

// Sweep deletes files in the upload directory older than maxAge.
// It is a no-op when maxAge is zero.
func (s *Saver) Sweep(maxAge time.Duration, logger *zap.Logger) {
	if maxAge <= 0 {
		return
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("upload sweep failed", zap.Error(err))
		}
		return
	}
	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			logger.Warn("failed to remove stale upload", zap.String("path", path), zap.Error(err))
		}
	}
}

// StartSweeper runs Sweep immediately and then every hour for the
// lifetime of the process. Callers with maxAge == 0 get no sweeping at
// all.
func (s *Saver) StartSweeper(maxAge time.Duration, logger *zap.Logger) {
	if maxAge <= 0 {
		return
	}
	go func() {
		s.Sweep(maxAge, logger)
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			s.Sweep(maxAge, logger)
		}
	}()
}
