package orderdoc

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigCreateTemp(t *testing.T) {
	cfg := &Config{TmpDir: t.TempDir()}

	f, err := cfg.CreateTemp("export_*.pdf")
	if err != nil {
		t.Fatalf("CreateTemp() error: %v", err)
	}
	defer f.Close()

	if got := filepath.Dir(f.Name()); got != cfg.TmpDir {
		t.Errorf("temp file created in %q, want %q", got, cfg.TmpDir)
	}
}

func TestScanFontDirSkipsUnusableFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("text"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.ttf"), []byte("not a font"), 0644); err != nil {
		t.Fatal(err)
	}

	fonts, err := ScanFontDir(dir)
	if err != nil {
		t.Fatalf("ScanFontDir() error: %v", err)
	}
	if len(fonts) != 0 {
		t.Errorf("ScanFontDir() = %v, want no fonts", fonts)
	}
}
