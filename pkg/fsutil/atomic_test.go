package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotexlint/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".gotexlint.yml")
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("rules: {}\n"), 0644))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "rules: {}\n", string(got))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "paper.tex")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("new"), 0644))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
	})

	t.Run("applies mode", func(t *testing.T) {
		t.Parallel()
		if runtime.GOOS == "windows" {
			t.Skip("file modes are not enforced on windows")
		}

		dir := t.TempDir()
		explicit := filepath.Join(dir, "explicit.yml")
		defaulted := filepath.Join(dir, "default.yml")

		require.NoError(t, fsutil.WriteAtomic(context.Background(), explicit, []byte("x"), 0600))
		require.NoError(t, fsutil.WriteAtomic(context.Background(), defaulted, []byte("x"), 0))

		info, err := os.Stat(explicit)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

		info, err = os.Stat(defaulted)
		require.NoError(t, err)
		assert.Equal(t, fsutil.DefaultFileMode, info.Mode().Perm())
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "cancelled.yml")
		err := fsutil.WriteAtomic(ctx, path, []byte("x"), 0644)
		require.ErrorIs(t, err, context.Canceled)
		assert.NoFileExists(t, path)
	})

	t.Run("leaves no temp file on error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		target := filepath.Join(dir, "target")
		require.NoError(t, os.Mkdir(target, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), nil, 0644))

		err := fsutil.WriteAtomic(context.Background(), target, []byte("x"), 0644)
		require.Error(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "target", entries[0].Name())
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		existing    *string
		content     string
		wantWritten bool
	}{
		{name: "missing file", content: "a", wantWritten: true},
		{name: "same content", existing: ptr("a"), content: "a", wantWritten: false},
		{name: "different content", existing: ptr("a"), content: "b", wantWritten: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), ".gotexlint.yml")
			if tt.existing != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.existing), 0644))
			}

			written, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte(tt.content), 0644)
			require.NoError(t, err)
			assert.Equal(t, tt.wantWritten, written)

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(got))
		})
	}
}

func ptr(s string) *string { return &s }
