package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wms/backend/migrations"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- test"), 0o644))
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add ecart index", "add_ecart_index"},
		{"Add-Ecart-Index", "add_ecart_index"},
		{"ADD_ECART_INDEX", "add_ecart_index"},
		{"add__ecart__index", "add_ecart_index"},
		{"Add Jobs 123", "add_jobs_123"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	t.Run("first migration starts at 000001", func(t *testing.T) {
		dir := t.TempDir()

		mf, err := CreateMigration(dir, "add stock index", "Index stocks by product")
		require.NoError(t, err)

		assert.Equal(t, "000001", mf.Version)
		assert.Equal(t, filepath.Join(dir, "000001_add_stock_index.up.sql"), mf.UpPath)
		assert.Equal(t, filepath.Join(dir, "000001_add_stock_index.down.sql"), mf.DownPath)

		up, err := os.ReadFile(mf.UpPath)
		require.NoError(t, err)
		assert.Contains(t, string(up), "add stock index")
		assert.Contains(t, string(up), "Index stocks by product")

		down, err := os.ReadFile(mf.DownPath)
		require.NoError(t, err)
		assert.Contains(t, string(down), "Rollback")
	})

	t.Run("continues after the highest existing version", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir,
			"000001_init.up.sql", "000001_init.down.sql",
			"000007_add_jobs.up.sql", "000007_add_jobs.down.sql",
		)

		mf, err := CreateMigration(dir, "add-resolved-index", "")
		require.NoError(t, err)
		assert.Equal(t, "000008", mf.Version)
		assert.True(t, strings.HasSuffix(mf.UpPath, "000008_add_resolved_index.up.sql"))
	})

	t.Run("creates the directory", func(t *testing.T) {
		nested := filepath.Join(t.TempDir(), "nested", "migrations")

		_, err := CreateMigration(nested, "test", "")
		require.NoError(t, err)

		info, err := os.Stat(nested)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("rejects a name without usable characters", func(t *testing.T) {
		_, err := CreateMigration(t.TempDir(), "!!!", "")
		require.Error(t, err)
	})
}

func TestListMigrations(t *testing.T) {
	t.Run("sorted by version", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir,
			"000010_add_products.up.sql", "000010_add_products.down.sql",
			"000002_add_jobs.up.sql", "000002_add_jobs.down.sql",
			"000001_init.up.sql", "000001_init.down.sql",
			"README.md", ".gitkeep",
		)
		require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir.up.sql"), 0o755))

		got, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"000001_init", "000002_add_jobs", "000010_add_products"}, got)
	})

	t.Run("empty directory", func(t *testing.T) {
		got, err := ListMigrations(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing directory", func(t *testing.T) {
		got, err := ListMigrations("/nonexistent/path/to/migrations")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestListMigrationsFS_Embedded(t *testing.T) {
	got, err := ListMigrationsFS(migrations.FS)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "000001_init", got[0])
}

func TestSplitByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"000001_init.up.sql":         {Data: []byte("")},
		"000001_init.down.sql":       {Data: []byte("")},
		"000002_add_jobs.up.sql":     {Data: []byte("")},
		"000003_add_resolved.up.sql": {Data: []byte("")},
		"notes.txt":                  {Data: []byte("")},
	}
	available, err := ListMigrationsFS(fsys)
	require.NoError(t, err)

	st := splitByVersion(available, 2, false)
	assert.Equal(t, uint(2), st.Version)
	assert.Equal(t, []string{"000001_init", "000002_add_jobs"}, st.Applied)
	assert.Equal(t, []string{"000003_add_resolved"}, st.Pending)

	none := splitByVersion(available, 0, false)
	assert.Empty(t, none.Applied)
	assert.Len(t, none.Pending, 3)
}

func TestVersionOf(t *testing.T) {
	v, ok := versionOf("000042_add_index")
	assert.True(t, ok)
	assert.Equal(t, uint(42), v)

	_, ok = versionOf("init")
	assert.False(t, ok)
}
