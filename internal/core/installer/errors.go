package installer

import "fmt"

// ConfigurationConflictError is a fatal error raised before any file is
// written: a duplicate target name or an unknown custom-configuration base
// type.
type ConfigurationConflictError struct {
	Library string
	Reason  string
	Err     error
}

func (e *ConfigurationConflictError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration conflict installing %s: %s: %v", e.Library, e.Reason, e.Err)
	}
	return fmt.Sprintf("configuration conflict installing %s: %s", e.Library, e.Reason)
}

func (e *ConfigurationConflictError) Unwrap() error { return e.Err }

// ArtifactGenerationError is a fatal error from a support-artifact pipeline
// step. Earlier artifacts stay on disk; the run is expected to be repeated
// from scratch.
type ArtifactGenerationError struct {
	Library string
	Step    string
	Err     error
}

func (e *ArtifactGenerationError) Error() string {
	return fmt.Sprintf("failed to generate %s for %s: %v", e.Step, e.Library, e.Err)
}

func (e *ArtifactGenerationError) Unwrap() error { return e.Err }
