package monitor_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotexlint/pkg/monitor"
)

func TestFileSource_Text(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "paper.tex")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0o600))

	text, err := monitor.NewFileSource(path).Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello\n", text)
}

func TestFileSource_Missing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.tex")

	text, err := monitor.NewFileSource(path).Text(context.Background())
	require.Error(t, err)
	assert.Empty(t, text)
	require.ErrorIs(t, err, monitor.ErrSourceUnavailable)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "absent.tex")
}

func TestFileSource_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := monitor.NewFileSource("unused.tex").Text(ctx)
	require.ErrorIs(t, err, monitor.ErrSourceUnavailable)
	require.ErrorIs(t, err, context.Canceled)
}
