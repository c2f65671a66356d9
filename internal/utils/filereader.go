package utils

import (
	"os"
	"sync"
)

// FileReader reads files with a process-lifetime cache. The generator reads
// go.mod once per run but from several call sites.
type FileReader struct {
	mu    sync.RWMutex
	cache map[string]string
}

// NewFileReader creates a caching file reader
func NewFileReader() *FileReader {
	return &FileReader{
		cache: make(map[string]string),
	}
}

// ReadFile returns the file's contents, from cache when already read
func (r *FileReader) ReadFile(path string) (string, error) {
	r.mu.RLock()
	if content, ok := r.cache[path]; ok {
		r.mu.RUnlock()
		return content, nil
	}
	r.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.cache[path] = string(data)
	r.mu.Unlock()
	return string(data), nil
}
