package testutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AddAssemblies creates placeholder assembly files under dir and returns
// their absolute paths in the order given
func AddAssemblies(t *testing.T, fsys *MemoryFS, dir string, names ...string) []string {
	t.Helper()

	require.NoError(t, fsys.MkdirAll(dir, 0755))

	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, fsys.WriteFile(path, []byte("MZ"), 0644))
		paths = append(paths, path)
	}
	return paths
}

// WriteOrderFile writes an order directive file with the given lines
func WriteOrderFile(t *testing.T, fsys *MemoryFS, path string, lines ...string) {
	t.Helper()

	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
}
