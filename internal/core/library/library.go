package library

import (
	"fmt"

	"github.com/nightconcept/peridot-go/internal/core/platform"
	"github.com/nightconcept/peridot-go/internal/core/sandbox"
	"github.com/nightconcept/peridot-go/internal/core/spec"
	"github.com/nightconcept/peridot-go/internal/core/xcodeproj"
)

// FileAccessor is the view over one specification's files on disk, paired
// with that specification's consumer for the library's platform. All file
// paths are absolute.
type FileAccessor struct {
	Consumer      *spec.Consumer
	SourceFiles   []string
	HeaderFiles   []string
	ResourceFiles []string
}

// Library is a resolved build unit: a named collection of specifications
// sharing one platform and deployment target, installed as one native
// target. It lives for the duration of a single installer run.
type Library struct {
	Label    string
	Platform platform.Platform
	Sandbox  *sandbox.Sandbox

	FileAccessors []*FileAccessor

	// CustomConfigurations maps configuration names declared by the user
	// project onto their base type ("debug" or "release").
	CustomConfigurations map[string]string

	// InhibitWarnings requests suppressing compiler warnings for all pod
	// sources in this library.
	InhibitWarnings bool

	target *xcodeproj.NativeTarget
}

// New creates a library for a target-definition label on one platform.
func New(label string, plat platform.Platform, sb *sandbox.Sandbox) *Library {
	return &Library{
		Label:                label,
		Platform:             plat,
		Sandbox:              sb,
		CustomConfigurations: make(map[string]string),
	}
}

// AddFileAccessor appends one specification's file accessor.
func (l *Library) AddFileAccessor(fa *FileAccessor) {
	l.FileAccessors = append(l.FileAccessors, fa)
}

// Consumers returns the specification consumers of all file accessors in
// declaration order. Derivation is a cheap repeatable query; nothing caches
// the result.
func (l *Library) Consumers() []*spec.Consumer {
	consumers := make([]*spec.Consumer, 0, len(l.FileAccessors))
	for _, fa := range l.FileAccessors {
		consumers = append(consumers, fa.Consumer)
	}
	return consumers
}

// Specs returns the distinct specifications behind the file accessors, in
// declaration order.
func (l *Library) Specs() []*spec.Specification {
	seen := make(map[*spec.Specification]bool)
	var specs []*spec.Specification
	for _, fa := range l.FileAccessors {
		s := fa.Consumer.Spec
		if s == nil || seen[s] {
			continue
		}
		seen[s] = true
		specs = append(specs, s)
	}
	return specs
}

// SetTarget records the installed native target. Assignment is single-shot:
// a library cannot be installed twice.
func (l *Library) SetTarget(target *xcodeproj.NativeTarget) error {
	if l.target != nil {
		return fmt.Errorf("library %q already has an installed target", l.Label)
	}
	l.target = target
	return nil
}

// Target returns the installed native target, or nil before installation.
func (l *Library) Target() *xcodeproj.NativeTarget {
	return l.target
}

// TargetName is the name of the native target materialized for the library.
func (l *Library) TargetName() string {
	return l.Label
}
