package site

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// ReadFile reads a file below the root. A missing file keeps fs.ErrNotExist in its chain.
func (s *Site) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "read failed").
			WithContext("path", path).
			Build()
	}
	return data, nil
}

// WriteFile replaces path atomically, creating parent directories.
func (s *Site) WriteFile(path string, data []byte) error {
	if err := writeAtomic(path, data); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write failed").
			WithContext("path", path).
			Build()
	}
	return nil
}

// WriteJSON writes v as two-space indented JSON.
func (s *Site) WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "encode json").WithContext("path", path).Build()
	}
	return s.WriteFile(path, data)
}

// ReadJSON decodes the JSON file at path into v.
func (s *Site) ReadJSON(path string, v any) error {
	data, err := s.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "decode json").WithContext("path", path).Build()
	}
	return nil
}

// FileSize returns the size of path in bytes.
func (s *Site) FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// IsNotExist reports whether err means the file is absent.
func IsNotExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist)
}

func writeAtomic(dest string, data []byte) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	_ = os.Chmod(tmpPath, filePerm)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
