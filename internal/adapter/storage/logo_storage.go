// Package storage writes uploaded logos to a local directory that the HTTP
// adapter serves under a public prefix.
package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"bagpresto/internal/config/configs"
)

// LogoStorage implements port.LogoStorage on the filesystem.
type LogoStorage struct {
	dir      string
	basePath string
}

// NewLogoStorage creates the logo directory if needed.
func NewLogoStorage(cfg configs.Storage) (*LogoStorage, error) {
	if err := os.MkdirAll(cfg.LogoDir, 0o755); err != nil {
		return nil, fmt.Errorf("create logo dir: %w", err)
	}
	return &LogoStorage{dir: cfg.LogoDir, basePath: "/" + strings.Trim(cfg.BasePath, "/")}, nil
}

// SaveLogo writes data under name and returns its public URL. Names with a
// path component are rejected.
func (s *LogoStorage) SaveLogo(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid logo name %q", name)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return "", err
	}
	if err = tmp.Close(); err != nil {
		return "", err
	}
	if err = os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", err
	}
	return path.Join(s.basePath, name), nil
}
