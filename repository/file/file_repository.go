package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ErrInvalidName is returned for names that would escape the storage directory.
var ErrInvalidName = errors.New("invalid file name")

type FileRepository interface {
	Save(ctx context.Context, ext string, r io.Reader) (string, error)
	Remove(ctx context.Context, name string) error
}

type disk struct {
	dir string
	now func() time.Time
}

// NewFileRepository stores files flat under dir, creating it when missing.
func NewFileRepository(dir string) (FileRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &disk{dir: dir, now: time.Now}, nil
}

// Save writes r to a new file named <unix millis><ext>. Concurrent uploads in
// the same millisecond get the next free timestamp.
func (d *disk) Save(ctx context.Context, ext string, r io.Reader) (string, error) {
	stamp := d.now().UnixMilli()

	var (
		f    *os.File
		name string
		err  error
	)
	for i := 0; i < 1000; i++ {
		name = strconv.FormatInt(stamp+int64(i), 10) + ext
		f, err = os.OpenFile(filepath.Join(d.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			break
		}
		if !errors.Is(err, os.ErrExist) {
			return "", err
		}
	}
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return name, nil
}

func (d *disk) Remove(ctx context.Context, name string) error {
	path, err := d.path(name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func (d *disk) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", ErrInvalidName
	}
	return filepath.Join(d.dir, name), nil
}
