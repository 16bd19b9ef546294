// Package installer materializes a resolved library as a native target
// inside the Pods project: it merges build settings across configurations,
// attaches sources with policy-derived compiler flags and generates the
// ordered set of support artifacts.
package installer

import (
	"github.com/nightconcept/peridot-go/internal/core/library"
	"github.com/nightconcept/peridot-go/internal/core/xcodeproj"
)

// Installer installs one library per invocation into a shared project
// model. Instances do not share mutable state with each other beyond the
// project, which the caller must not mutate concurrently.
type Installer struct {
	Project *xcodeproj.Project

	// GenerateBridgeSupport enables bridge-metadata generation for every
	// installed library.
	GenerateBridgeSupport bool
	// SetARCCompatibilityFlag forwards the project-wide ARC compatibility
	// toggle to the settings-file generator.
	SetARCCompatibilityFlag bool
	// PodsRoot overrides the PODS_ROOT build setting value.
	PodsRoot string
}

// Result describes one completed installation.
type Result struct {
	Target           *xcodeproj.NativeTarget
	SupportGroup     *xcodeproj.Group
	WrittenArtifacts []string
}

// Install runs the full installation sequence for a library: create the
// target, open the support group, attach sources, then run the artifact
// pipeline. Any failure aborts the remainder and is returned to the caller;
// files already written stay in place.
func (i *Installer) Install(lib *library.Library) (*Result, error) {
	builder := &TargetBuilder{Project: i.Project}
	target, err := builder.Create(lib)
	if err != nil {
		return nil, err
	}

	registry := &SupportGroupRegistry{Project: i.Project}
	group := registry.Open(lib)

	registrar := &SourceFileRegistrar{Project: i.Project}
	if err := registrar.Attach(lib, target); err != nil {
		return nil, err
	}

	plan := &InstallPlan{
		Library:                 lib,
		Project:                 i.Project,
		Target:                  target,
		Group:                   group,
		GenerateBridgeSupport:   i.GenerateBridgeSupport,
		SetARCCompatibilityFlag: i.SetARCCompatibilityFlag,
		PodsRoot:                i.PodsRoot,
	}
	pipeline := &SupportArtifactPipeline{Registry: registry}
	if err := pipeline.Run(plan); err != nil {
		return nil, err
	}

	return &Result{
		Target:           target,
		SupportGroup:     group,
		WrittenArtifacts: plan.WrittenArtifacts,
	}, nil
}
