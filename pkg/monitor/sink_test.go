package monitor_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotexlint/pkg/monitor"
)

func TestWriterSink_Navigate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := monitor.NewWriterSink("paper.tex", &buf)

	require.NoError(t, sink.Navigate(context.Background(), 42))
	require.NoError(t, sink.Navigate(context.Background(), 0))

	assert.Equal(t, "paper.tex:42\npaper.tex:1\n", buf.String())
}

func TestEditorSink_Command(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		editor   string
		line     int
		wantArgs []string
	}{
		{
			name:     "plain editor",
			editor:   "vim",
			line:     12,
			wantArgs: []string{"vim", "+12", "paper.tex"},
		},
		{
			name:     "editor with flags",
			editor:   "code --wait",
			line:     3,
			wantArgs: []string{"code", "--wait", "+3", "paper.tex"},
		},
		{
			name:     "line clamped to first",
			editor:   "nano",
			line:     -4,
			wantArgs: []string{"nano", "+1", "paper.tex"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sink := &monitor.EditorSink{Path: "paper.tex", Editor: tt.editor}
			cmd, err := sink.Command(context.Background(), tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestEditorSink_NoEditor(t *testing.T) {
	t.Parallel()

	sink := &monitor.EditorSink{Path: "paper.tex", Editor: "   "}

	err := sink.Navigate(context.Background(), 1)
	require.ErrorIs(t, err, monitor.ErrNoEditor)
}

func TestNewEditorSink_PrefersVisual(t *testing.T) {
	t.Setenv("VISUAL", "emacs")
	t.Setenv("EDITOR", "vi")

	assert.Equal(t, "emacs", monitor.NewEditorSink("a.tex").Editor)

	t.Setenv("VISUAL", "")
	assert.Equal(t, "vi", monitor.NewEditorSink("a.tex").Editor)
}
