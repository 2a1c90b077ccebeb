package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DocumentSink receives finished documents. Injecting it keeps the generator
// testable and lets deployments decide where PDFs land.
type DocumentSink interface {
	Write(ctx context.Context, filename string, data []byte) error
}

// DirectorySink writes documents into a local directory, creating it on
// first use.
type DirectorySink struct {
	Dir string
}

func NewDirectorySink(dir string) *DirectorySink { return &DirectorySink{Dir: dir} }

func (s *DirectorySink) Write(_ context.Context, filename string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create documents dir: %w", err)
	}
	path := filepath.Join(s.Dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
