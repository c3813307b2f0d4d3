package orderdoc

import (
	"fmt"
	"os"
)

type Config struct {
	// A path to json where it store font name and path to the font file
	FontMetadataPath string
	// Directory scanned for font files when the metadata json is missing
	FontDir string
	// Directory where the temporary files are stored during rendering, the file will be deleted after rendering
	TmpDir string
}

func NewDefaultConfig() *Config {
	cfg := Config{
		FontMetadataPath: "font_metadata.json",
		FontDir:          "fonts",
		TmpDir:           fmt.Sprintf("%s/orderdoc/render/tmp", os.TempDir()),
	}

	// 0755 mean owner can read, write and execute
	if err := os.MkdirAll(cfg.TmpDir, 0755); err != nil {
		fmt.Printf("Error creating tmp directory: %v\n", err)
	}

	return &cfg
}

// CreateTemp opens a temporary file in the rendering tmp directory.
func (c *Config) CreateTemp(pattern string) (*os.File, error) {
	return os.CreateTemp(c.TmpDir, pattern)
}
