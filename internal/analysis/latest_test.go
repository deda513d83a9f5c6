package analysis

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestResultDir(t *testing.T) {
	root := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"2024-05-01_10-30-00", "2024-05-03_08-00-00", "2024-05-02_12-00-00"} {
		dir := filepath.Join(root, name)
		require.NoError(t, os.Mkdir(dir, 0755))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(dir, mod, mod))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "newest-file"), nil, 0644))

	got, err := LatestResultDir(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "2024-05-02_12-00-00"), got)
}

func TestLatestResultDir_Errors(t *testing.T) {
	_, err := LatestResultDir(filepath.Join(t.TempDir(), "results"))
	assert.ErrorIs(t, err, ErrNoResultsDir)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "file"), nil, 0644))
	_, err = LatestResultDir(root)
	assert.ErrorIs(t, err, ErrNoResultSubdirs)
}
