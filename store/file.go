package store

import (
	"context"
	"sync"

	"github.com/metafates/gache"
	"github.com/vidshelf/vidshelf/filesystem"
)

// File keeps every key in one JSON document on the active filesystem.
type File struct {
	internal *gache.Cache[map[string]string]
	path     string
	limits   limits
	mu       sync.RWMutex
}

// NewFile creates a file store at path. The file is created on the first Set.
func NewFile(path string, opts ...Option) *File {
	return &File{
		internal: gache.New[map[string]string](
			&gache.Options{
				Path:       path,
				FileSystem: &filesystem.GacheFs{},
			},
		),
		path:   path,
		limits: newLimits(opts),
	}
}

func (f *File) read() (map[string]string, error) {
	exists, err := filesystem.API().Exists(f.path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return make(map[string]string), nil
	}

	data, expired, err := f.internal.Get()
	if err != nil {
		return nil, err
	}
	if expired || data == nil {
		return make(map[string]string), nil
	}
	return data, nil
}

func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := f.read()
	if err != nil {
		return "", false, err
	}

	value, ok := data[key]
	return value, ok, nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	if err := f.limits.check(key, value); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		return err
	}

	data[key] = value
	return f.internal.Set(data)
}

func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		return err
	}

	if _, ok := data[key]; !ok {
		return nil
	}

	delete(data, key)
	return f.internal.Set(data)
}

// Close is a no-op; every Set is written through.
func (f *File) Close() error {
	return nil
}
