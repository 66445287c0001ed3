package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrNoEditor is returned by EditorSink when neither VISUAL nor EDITOR is set.
var ErrNoEditor = errors.New("no editor configured: set VISUAL or EDITOR")

// NavigationSink moves a viewer to a 1-based line of the document.
type NavigationSink interface {
	Navigate(ctx context.Context, line int) error
}

// EditorSink opens the document in the user's editor at a line, using the
// "+<line> <path>" convention understood by vi, emacs, nano, and most others.
type EditorSink struct {
	Path   string
	Editor string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewEditorSink creates an EditorSink for path using $VISUAL, then $EDITOR.
func NewEditorSink(path string) *EditorSink {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	return &EditorSink{
		Path:   path,
		Editor: editor,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Command builds the editor invocation for line without running it.
func (s *EditorSink) Command(ctx context.Context, line int) (*exec.Cmd, error) {
	fields := strings.Fields(s.Editor)
	if len(fields) == 0 {
		return nil, ErrNoEditor
	}

	args := append(fields[1:len(fields):len(fields)], fmt.Sprintf("+%d", clampLine(line)), s.Path)
	cmd := exec.CommandContext(ctx, fields[0], args...) //nolint:gosec // editor is chosen by the user
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	return cmd, nil
}

// Navigate implements NavigationSink.
func (s *EditorSink) Navigate(ctx context.Context, line int) error {
	cmd, err := s.Command(ctx, line)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run editor %s: %w", cmd.Path, err)
	}
	return nil
}

// WriterSink prints "path:line" locations, which terminals and IDEs turn into links.
type WriterSink struct {
	Path string
	W    io.Writer
}

// NewWriterSink creates a WriterSink.
func NewWriterSink(path string, w io.Writer) *WriterSink {
	return &WriterSink{Path: path, W: w}
}

// Navigate implements NavigationSink.
func (s *WriterSink) Navigate(_ context.Context, line int) error {
	if _, err := fmt.Fprintf(s.W, "%s:%d\n", s.Path, clampLine(line)); err != nil {
		return fmt.Errorf("write location: %w", err)
	}
	return nil
}

func clampLine(line int) int {
	return max(line, 1)
}
