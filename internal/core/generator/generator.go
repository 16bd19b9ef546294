package generator

import (
	"fmt"
	"os"
	"path/filepath"
)

// Generator renders one support artifact. Implementations own their content
// format; callers only care about inputs and the output path.
type Generator interface {
	Generate() string
	SaveAs(path string) error
}

// saveContent writes rendered content, creating parent directories as
// needed.
func saveContent(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
