package storage

import "ppe2e/internal/domain"

// Storage persists the files a test case produces and reads reports back for analysis
type Storage interface {
	// WriteText writes content to path, creating missing parent directories
	WriteText(path, content string) error
	SaveReport(path string, report *domain.Report) error
	LoadReport(path string) (*domain.Report, error)
}

// FileStorage stores case outputs as plain files and reports as YAML
type FileStorage struct {
	dirMode  uint32
	fileMode uint32
}

// NewFileStorage returns a Storage backed by the local filesystem
func NewFileStorage() *FileStorage {
	return &FileStorage{dirMode: 0755, fileMode: 0644}
}
