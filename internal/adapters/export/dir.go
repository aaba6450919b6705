// Package export implements the sinks report exports and activity
// workbooks are written to: local directories and S3 buckets.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNotDirectory is returned when a local destination is missing or is not
// a directory.
var ErrNotDirectory = errors.New("destination is not an existing directory")

// FileMode is the mode of files DirSink writes.
const FileMode os.FileMode = 0o644

// DirSink writes exports into local directories.
type DirSink struct{}

// Save writes r to dest/name through a temporary file in dest, so a failed
// download never leaves a truncated file behind.
func (DirSink) Save(ctx context.Context, dest, name string, r io.Reader) (string, int64, error) {
	if info, err := os.Stat(dest); err != nil || !info.IsDir() {
		return "", 0, fmt.Errorf("%s: %w", dest, ErrNotDirectory)
	}

	tmp, err := os.CreateTemp(dest, "."+name+".*.part")
	if err != nil {
		return "", 0, fmt.Errorf("creating temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	n, err := io.Copy(tmp, contextReader{ctx: ctx, r: r})
	if err == nil {
		err = tmp.Chmod(FileMode) //nolint:gosec // exports are ordinary user files
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", 0, fmt.Errorf("writing %s: %w", name, err)
	}

	path := filepath.Join(dest, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", 0, fmt.Errorf("renaming to %s: %w", path, err)
	}
	return path, n, nil
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
