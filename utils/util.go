package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ReadyDir ...
func ReadyDir(filename string) error {
	dir := filepath.Dir(filename)
	return os.MkdirAll(dir, os.FileMode(0755))
}

// SaveFile writes data next to filename and renames it into place, so a
// reader never sees a half written file.
func SaveFile(filename string, data []byte) error {
	if err := ReadyDir(filename); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err = os.Chmod(tmp.Name(), os.FileMode(0644)); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err = os.Rename(tmp.Name(), filename); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// IsRegular ...
func IsRegular(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.Mode().IsRegular()
}

// Within reports whether child is parent or lies below it. Both must be clean
// absolute paths.
func Within(parent, child string) bool {
	if parent == child {
		return true
	}
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
