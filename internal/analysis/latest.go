package analysis

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

var (
	// ErrNoResultsDir is returned when the results root does not exist
	ErrNoResultsDir = errors.New("results directory does not exist")
	// ErrNoResultSubdirs is returned when the results root has no run directories
	ErrNoResultSubdirs = errors.New("results directory does not contain any subdirectories")
)

// LatestResultDir returns the most recently modified subdirectory of root
func LatestResultDir(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("'%s': %w", root, ErrNoResultsDir)
		}
		return "", fmt.Errorf("read results directory: %w", err)
	}

	var latest string
	var latestMod time.Time
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestMod) {
			latest, latestMod = e.Name(), info.ModTime()
		}
	}
	if latest == "" {
		return "", fmt.Errorf("'%s': %w", root, ErrNoResultSubdirs)
	}
	return filepath.Join(root, latest), nil
}
