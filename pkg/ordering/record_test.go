package ordering

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ilweld/pkg/errors"
	"ilweld/pkg/testutil"
)

func TestWriteOrderRecord(t *testing.T) {
	t.Run("writes base names next to the primary", func(t *testing.T) {
		fsys := testutil.NewMemoryFS()
		require.NoError(t, fsys.MkdirAll("/out", 0755))

		order := []string{
			"/out/App.exe",
			"/proj/bin/App.Core.dll",
			"/pkgs/Newtonsoft.Json.13.0.3/lib/Newtonsoft.Json.dll",
		}

		path, err := WriteOrderRecord(fsys, "/out/App.exe", order)
		require.NoError(t, err)
		assert.Equal(t, "/out/App.mergeorder", path)

		data, err := fsys.ReadFile("/out/App.mergeorder")
		require.NoError(t, err)
		assert.Equal(t, "App.exe\nApp.Core.dll\nNewtonsoft.Json.dll\n", string(data))
	})

	t.Run("write failure carries the record code", func(t *testing.T) {
		fsys := testutil.NewMemoryFS()
		fsys.WithError("/out/App.mergeorder", fs.ErrPermission)

		path, err := WriteOrderRecord(fsys, "/out/App.dll", []string{"/out/App.dll"})

		assert.Equal(t, "/out/App.mergeorder", path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRecordWrite))
	})
}
