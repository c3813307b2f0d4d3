package util

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Example output for "ex.txt": "21313123123_ex.txt"
func AddUniquePrefixToFileName(fileName string) string {
	uniquePrefix := fmt.Sprintf("%d", time.Now().UnixNano())
	return fmt.Sprintf("%s_%s", uniquePrefix, fileName)
}

func GetTempDir() string {
	return fmt.Sprintf("%s/diplomdocs", os.TempDir())
}

func CreateTemp(pattern string) (*os.File, error) {
	tempDir := GetTempDir()
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	return os.CreateTemp(tempDir, pattern)
}

// ValidateUploadedFile rejects files above maxSize bytes or with an
// extension outside allowedExtensions (compared lowercase, dot included).
func ValidateUploadedFile(fileHeader *multipart.FileHeader, maxSize int64, allowedExtensions []string) error {
	if fileHeader.Size > maxSize {
		return fmt.Errorf("file is too large, maximum size is %dMB", maxSize>>20)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !slices.Contains(allowedExtensions, ext) {
		return fmt.Errorf("unsupported file format %q, allowed formats: %s", ext, strings.Join(allowedExtensions, ", "))
	}

	return nil
}

// FormatFileSize renders a byte count for user-facing listings.
func FormatFileSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d bytes", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	case size < 1024*1024*1024:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	default:
		return fmt.Sprintf("%.1f GB", float64(size)/(1024*1024*1024))
	}
}
