package monitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/gotexlint/pkg/fsutil"
)

// ErrSourceUnavailable is wrapped by every SourceProvider failure.
var ErrSourceUnavailable = errors.New("source unavailable")

// SourceProvider returns the current full text of the document.
type SourceProvider interface {
	Text(ctx context.Context) (string, error)
}

// FileSource reads the document from disk on every call.
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Text implements SourceProvider.
func (s *FileSource) Text(ctx context.Context) (string, error) {
	text, err := fsutil.ReadText(ctx, s.Path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	return text, nil
}
