package store

import (
	"context"
	"net/url"
	"os"
	"path/filepath"

	"github.com/Laisky/errors/v2"
)

// FileStore keeps each key as a file below a root directory.
type FileStore struct {
	root string
}

// NewFileStore parses a file:///abs/dir URI and creates the directory. The
// path must be absolute.
func NewFileStore(uri string) (*FileStore, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, errors.Wrap(err, "invalid file URI")
	}
	if u.Scheme != "file" {
		return nil, errors.Errorf("invalid file URI scheme: %s", u.Scheme)
	}

	root := filepath.Clean(u.Path)
	if u.Host != "" || !filepath.IsAbs(root) {
		return nil, errors.Errorf("store path must be absolute: %s", uri)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrap(err, "create store directory")
	}
	return &FileStore{root: root}, nil
}

func (f *FileStore) path(key string) (string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(f.root, filepath.FromSlash(key)), nil
}

func (f *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	p, err := f.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "read %s", p)
	}
	return data, nil
}

// Put writes through a temporary file and renames it so readers never see a
// partial document.
func (f *FileStore) Put(ctx context.Context, key string, data []byte) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s", key)
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "rename %s", tmp)
	}
	return nil
}

func (f *FileStore) Delete(ctx context.Context, key string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "remove %s", p)
	}
	return nil
}
