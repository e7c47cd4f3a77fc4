package ports

import "time"

// FileSystem abstracts file system operations.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// ModTime returns the last modification time of a file.
	ModTime(path string) (time.Time, error)

	// Size returns the size of a file in bytes.
	Size(path string) (int64, error)
}
