package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeObject replaces path with image atomically. The data goes to a
// temporary file in the same directory, is flushed to disk, then renamed into
// place, so a failed run never leaves a partial object behind.
func writeObject(path string, image []byte) (err error) {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(image); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = syncFile(f); err != nil {
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err = f.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
