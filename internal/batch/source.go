package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/muhammadolammi/resumefields/internal/document"
)

const (
	DefaultAttempts = 3
	DefaultBackoff  = 500 * time.Millisecond
)

// Source is one document of a batch.
type Source interface {
	// Name identifies the document in results, usually a filename or object key.
	Name() string
	// Load returns the decoded text of the document.
	Load(ctx context.Context) (string, error)
}

type FileSource struct {
	Path string
}

func (s FileSource) Name() string {
	return filepath.Base(s.Path)
}

func (s FileSource) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return document.LoadFile(s.Path)
}

// DirSources lists the supported documents directly inside dir, sorted by
// name. Subdirectories are not visited.
func DirSources(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var sources []Source
	for _, entry := range entries {
		if entry.IsDir() || !document.Supported(entry.Name()) {
			continue
		}
		sources = append(sources, FileSource{Path: filepath.Join(dir, entry.Name())})
	}
	return sources, nil
}

type Downloader interface {
	Download(ctx context.Context, key string) ([]byte, error)
}

// ObjectSource is a document held in object storage.
type ObjectSource struct {
	Key        string
	Filename   string
	MediaType  string
	Downloader Downloader
	Attempts   int
	Backoff    time.Duration
}

func (s ObjectSource) Name() string {
	if s.Filename != "" {
		return s.Filename
	}
	return s.Key
}

func (s ObjectSource) Load(ctx context.Context) (string, error) {
	attempts := s.Attempts
	if attempts < 1 {
		attempts = DefaultAttempts
	}
	backoff := s.Backoff
	if backoff <= 0 {
		backoff = DefaultBackoff
	}

	data, err := Retry(ctx, attempts, backoff, func() ([]byte, error) {
		return s.Downloader.Download(ctx, s.Key)
	})
	if err != nil {
		return "", fmt.Errorf("file download error: %w", err)
	}

	text, err := document.Decode(s.Name(), s.MediaType, data)
	if err != nil {
		return "", fmt.Errorf("text extraction error: %w", err)
	}
	return text, nil
}

// ObjectSources wraps the supported keys as sources sharing one downloader.
func ObjectSources(d Downloader, keys []string) []Source {
	var sources []Source
	for _, key := range keys {
		if !document.Supported(key) {
			continue
		}
		sources = append(sources, ObjectSource{Key: key, Downloader: d})
	}
	return sources
}
