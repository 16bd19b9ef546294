package installer

import (
	"fmt"

	"github.com/nightconcept/peridot-go/internal/core/library"
	"github.com/nightconcept/peridot-go/internal/core/xcodeproj"
)

// SourceFileRegistrar attaches a library's source files, per-file compiler
// flags and framework links to its native target.
type SourceFileRegistrar struct {
	Project *xcodeproj.Project
}

// Attach registers every file accessor's sources and headers with the
// target. It must be invoked exactly once per installation: re-invocation
// duplicates file references.
func (r *SourceFileRegistrar) Attach(lib *library.Library, target *xcodeproj.NativeTarget) error {
	for _, fa := range lib.FileAccessors {
		flags := JoinFlags(FlagsFor(fa.Consumer))

		for _, sourceFile := range fa.SourceFiles {
			rel, err := r.Project.RelativePath(sourceFile)
			if err != nil {
				return fmt.Errorf("failed to attach source %s: %w", sourceFile, err)
			}
			target.AddSource(r.Project.FileReference(rel), flags)
		}
		for _, headerFile := range fa.HeaderFiles {
			rel, err := r.Project.RelativePath(headerFile)
			if err != nil {
				return fmt.Errorf("failed to attach header %s: %w", headerFile, err)
			}
			target.AddHeader(r.Project.FileReference(rel))
		}
		for _, framework := range fa.Consumer.Frameworks {
			r.Project.AddSystemFramework(framework, target)
		}
	}
	return nil
}
