package utils

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/maksimkurb/cf-ip-updater/src/internal/log"
)

func CloseOrWarn(file io.Closer) {
	if err := file.Close(); err != nil {
		log.Warnf("Failed to close file: %v", err)
	}
}

// ReadFileOrEmpty returns the file content, or nil and exists=false when the file is absent.
func ReadFileOrEmpty(path string) (content []byte, exists bool, err error) {
	content, err = os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return content, true, nil
}

// WriteFileAtomic replaces path with data via a temporary file and rename.
// Symlinks are followed so that the link itself stays in place, and the mode of an
// existing file is kept; perm only applies to newly created files.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return renameio.WriteFile(target, data, perm, renameio.WithExistingPermissions())
}
