package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadableSize(t *testing.T) {
	tests := []struct {
		bytes int64
		si    bool
		want  string
	}{
		{0, false, "0 B"},
		{512, false, "512.00 B"},
		{1536, false, "1.50 KiB"},
		{1500, true, "1.50 KB"},
		{3 * 1024 * 1024, false, "3.00 MiB"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, readableSize(tt.bytes, tt.si))
	}
}

func writeFiles(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o644))
	}
	return dir
}

func TestLoadEntries(t *testing.T) {
	dir := writeFiles(t, "c.txt", "a.zip", "b.png")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	entries, err := loadEntries(dir, 0)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	require.Equal(t, []string{"a.zip", "b.png", "c.txt", "sub"}, names)
	require.Equal(t, "📦", entries[0].Icon)
	require.Equal(t, "🖼️", entries[1].Icon)
	require.Equal(t, "📄", entries[2].Icon)
	require.Equal(t, "📂", entries[3].Icon)
	require.Equal(t, filepath.Join(dir, "c.txt"), entries[2].Path)
	require.Equal(t, "4.00 B", entries[2].row(false)[2])
	require.Empty(t, entries[3].row(false)[2])

	limited, err := loadEntries(dir, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)

	_, err = loadEntries(filepath.Join(dir, "missing"), 0)
	require.Error(t, err)
}

func TestLoadEntriesCompressedTarball(t *testing.T) {
	dir := writeFiles(t, "backup.tar.gz")

	entries, err := loadEntries(dir, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "📦", entries[0].Icon)
}
