// Package filex stores downloaded attachments on the local disk.
package filex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrBadName = errors.New("bad file name")

// EnsureDir creates dir if needed. Relative paths resolve against the
// working directory.
func EnsureDir(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// Save writes data as name inside dir and returns the full path. Only the
// base of name is used. An existing file is never overwritten; a numeric
// suffix is added instead.
func Save(dir, name string, data []byte) (string, error) {
	base := filepath.Base(name)
	if base == "." || base == ".." || base == string(filepath.Separator) || strings.TrimSpace(base) == "" {
		return "", ErrBadName
	}

	dir, err := EnsureDir(dir)
	if err != nil {
		return "", err
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	path := filepath.Join(dir, base)
	for i := 1; ; i++ {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o660)
		if errors.Is(err, os.ErrExist) {
			path = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
			continue
		}
		if err != nil {
			return "", err
		}
		if _, err := f.Write(data); err != nil {
			_ = f.Close()
			return "", err
		}
		return path, f.Close()
	}
}
