package output

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// WriteFile replaces outPath with data. The bytes go to a temporary file in
// the same directory which is then renamed over outPath, so readers never
// observe a partial file. The parent directory must already exist.
func WriteFile(outPath string, data []byte) error {
	return atomic.WriteFile(outPath, bytes.NewReader(data))
}

// CopyFS copies every regular file of fsys under dir, creating intermediate
// directories. It returns the written paths in walk order.
func CopyFS(dir string, fsys fs.FS) ([]string, error) {
	var written []string
	err := fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		target := filepath.Join(dir, filepath.FromSlash(name))
		if entry.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("output: read %s: %w", name, err)
		}
		if err := WriteFile(target, data); err != nil {
			return fmt.Errorf("output: write %s: %w", target, err)
		}
		written = append(written, target)
		return nil
	})
	if err != nil {
		return written, err
	}
	return written, nil
}
