package util

import (
	"mime/multipart"
	"strings"
	"testing"
)

func TestAddUniquePrefixToFileName(t *testing.T) {
	filename := "testfile.txt"
	result := AddUniquePrefixToFileName(filename)

	if !strings.HasSuffix(result, "_testfile.txt") {
		t.Errorf("Expected filename to have unique prefix, got %s", result)
	}

	prefix := strings.Split(result, "_")[0]
	if len(prefix) == 0 {
		t.Errorf("Expected a non-empty unique prefix, got %s", prefix)
	}
}

func TestValidateUploadedFile(t *testing.T) {
	allowed := []string{".pdf", ".docx", ".doc", ".txt", ".jpg", ".jpeg", ".png"}

	tests := []struct {
		name     string
		filename string
		size     int64
		wantErr  bool
	}{
		{"Valid pdf", "diploma.pdf", 1 << 20, false},
		{"Valid docx uppercase extension", "diploma.DOCX", 1 << 20, false},
		{"Executable rejected", "virus.exe", 1024, true},
		{"No extension rejected", "diploma", 1024, true},
		{"Oversized rejected", "diploma.pdf", 11 << 20, true},
		{"Exactly at limit accepted", "diploma.pdf", 10 << 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fh := &multipart.FileHeader{Filename: tt.filename, Size: tt.size}
			err := ValidateUploadedFile(fh, 10<<20, allowed)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUploadedFile() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0 bytes"},
		{512, "512 bytes"},
		{2048, "2.0 KB"},
		{5 << 20, "5.0 MB"},
		{3 << 30, "3.0 GB"},
	}

	for _, tt := range tests {
		if got := FormatFileSize(tt.size); got != tt.expected {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tt.size, got, tt.expected)
		}
	}
}
