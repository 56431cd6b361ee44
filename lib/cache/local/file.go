package local

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ugorji/go/codec"
	"github.com/weit-project/eit-toolkit/lib/cache"
)

// New returns a cache client storing the lexicon as a msgpack blob at path.
func New(path string) cache.Client {
	return &fileCache{path: path}
}

type fileCache struct {
	path string
}

var handle = &codec.MsgpackHandle{}

func (f *fileCache) Exists() bool {
	info, err := os.Stat(f.path)
	return err == nil && !info.IsDir()
}

func (f *fileCache) Save(entries map[string]float64) error {
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	// Written next to the target and renamed into place.
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	if err := codec.NewEncoder(w, handle).Encode(entries); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode lexicon cache: %w", err)
	}
	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

func (f *fileCache) Load() (map[string]float64, error) {
	file, err := os.Open(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, cache.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	defer file.Close()

	entries := make(map[string]float64)
	if err := codec.NewDecoder(bufio.NewReader(file), handle).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode lexicon cache %s: %w", f.path, err)
	}
	return entries, nil
}
