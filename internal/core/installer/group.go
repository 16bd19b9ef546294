package installer

import (
	"fmt"

	"github.com/nightconcept/peridot-go/internal/core/library"
	"github.com/nightconcept/peridot-go/internal/core/xcodeproj"
)

// SupportGroupRegistry tracks the logical group holding every generated
// support artifact of one library.
type SupportGroupRegistry struct {
	Project *xcodeproj.Project
}

// Open creates the library's empty support group under the project-wide
// support-files parent, named after the library's label.
func (r *SupportGroupRegistry) Open(lib *library.Library) *xcodeproj.Group {
	return r.Project.SupportFilesGroup.NewGroup(lib.Label)
}

// Register relativizes an absolute artifact path against the sandbox root
// and creates a file reference for it inside the group. Identical absolute
// paths always map to the same relative path; each call produces a fresh
// reference (callers register each artifact exactly once by construction).
func (r *SupportGroupRegistry) Register(group *xcodeproj.Group, absolutePath string) (*xcodeproj.FileReference, error) {
	rel, err := r.Project.RelativePath(absolutePath)
	if err != nil {
		return nil, fmt.Errorf("failed to register support file %s: %w", absolutePath, err)
	}
	return group.NewFile(rel), nil
}
