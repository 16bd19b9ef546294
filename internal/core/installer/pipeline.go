package installer

import (
	"fmt"
	"path/filepath"

	"github.com/nightconcept/peridot-go/internal/core/generator"
	"github.com/nightconcept/peridot-go/internal/core/library"
	"github.com/nightconcept/peridot-go/internal/core/xcodeproj"
)

// RequiredSettings are stamped onto every build configuration after the base
// configuration reference is set, so that project invariants cannot be
// shadowed by values the xcconfig file defines.
var RequiredSettings = map[string]string{
	"GCC_PRECOMPILE_PREFIX_HEADER": "YES",
	"GCC_VERSION":                  "com.apple.compilers.llvm.clang.1_0",
	"PODS_ROOT":                    "${SRCROOT}",
	"SKIP_INSTALL":                 "YES",
	"ALWAYS_SEARCH_USER_PATHS":     "YES",
}

// InstallPlan is the mutable state threaded through the pipeline steps. Each
// step reads the output of earlier steps through it and records what it
// wrote.
type InstallPlan struct {
	Library *library.Library
	Project *xcodeproj.Project
	Target  *xcodeproj.NativeTarget
	Group   *xcodeproj.Group

	// GenerateBridgeSupport enables the bridge-metadata step.
	GenerateBridgeSupport bool
	// SetARCCompatibilityFlag is forwarded to the settings-file generator.
	SetARCCompatibilityFlag bool
	// PodsRoot overrides the PODS_ROOT value in the generated settings file.
	PodsRoot string

	// BridgeSupportRef is the sandbox-relative bridge-metadata path. It is
	// set only when the bridge step ran and is consumed by the
	// resource-staging step.
	BridgeSupportRef string

	// WrittenArtifacts collects the absolute path of every generated file in
	// generation order.
	WrittenArtifacts []string
}

// SupportArtifactPipeline generates the fixed ordered set of support
// artifacts for one library and wires them into the target. A step failure
// aborts the remaining steps; artifacts already written stay in place.
type SupportArtifactPipeline struct {
	Registry *SupportGroupRegistry
}

type pipelineStep struct {
	name string
	run  func(*InstallPlan) error
}

func (p *SupportArtifactPipeline) steps() []pipelineStep {
	return []pipelineStep{
		{"settings file", p.generateSettingsFile},
		{"environment header", p.generateEnvironmentHeader},
		{"prefix header", p.generatePrefixHeader},
		{"bridge metadata", p.generateBridgeMetadata},
		{"resources script", p.generateResourcesScript},
		{"acknowledgements", p.generateAcknowledgements},
		{"dummy source", p.generateDummySource},
	}
}

// Run executes every step in order against the plan.
func (p *SupportArtifactPipeline) Run(plan *InstallPlan) error {
	for _, step := range p.steps() {
		if err := step.run(plan); err != nil {
			return &ArtifactGenerationError{Library: plan.Library.Label, Step: step.name, Err: err}
		}
	}
	return nil
}

// generateSettingsFile writes the xcconfig, sets it as the base
// configuration reference on every build configuration and stamps the
// required settings on top.
func (p *SupportArtifactPipeline) generateSettingsFile(plan *InstallPlan) error {
	lib := plan.Library
	gen := &generator.Xcconfig{
		Consumers:               lib.Consumers(),
		PodsRoot:                plan.PodsRoot,
		SetARCCompatibilityFlag: plan.SetARCCompatibilityFlag,
	}
	path := lib.Sandbox.SettingsFilePath(lib.Label)
	if err := gen.SaveAs(path); err != nil {
		return err
	}
	ref, err := p.Registry.Register(plan.Group, path)
	if err != nil {
		return err
	}
	for _, config := range plan.Target.BuildConfigurations {
		config.BaseConfiguration = ref
		for k, v := range RequiredSettings {
			config.Settings[k] = v
		}
	}
	plan.WrittenArtifacts = append(plan.WrittenArtifacts, path)
	return nil
}

// generateEnvironmentHeader writes the umbrella header. Informational only:
// no target mutation.
func (p *SupportArtifactPipeline) generateEnvironmentHeader(plan *InstallPlan) error {
	lib := plan.Library
	gen := &generator.EnvironmentHeader{Specs: lib.Specs()}
	path := lib.Sandbox.UmbrellaHeaderPath(lib.Label)
	if err := gen.SaveAs(path); err != nil {
		return err
	}
	if _, err := p.Registry.Register(plan.Group, path); err != nil {
		return err
	}
	plan.WrittenArtifacts = append(plan.WrittenArtifacts, path)
	return nil
}

// generatePrefixHeader writes the prefix header and points every build
// configuration's prefix-header setting at it.
func (p *SupportArtifactPipeline) generatePrefixHeader(plan *InstallPlan) error {
	lib := plan.Library
	umbrella := filepath.Base(lib.Sandbox.UmbrellaHeaderPath(lib.Label))
	gen := &generator.PrefixHeader{
		Platform:                lib.Platform,
		Specs:                   lib.Specs(),
		EnvironmentHeaderImport: fmt.Sprintf("#import %q", umbrella),
	}
	path := lib.Sandbox.PrefixHeaderPath(lib.Label)
	if err := gen.SaveAs(path); err != nil {
		return err
	}
	if _, err := p.Registry.Register(plan.Group, path); err != nil {
		return err
	}
	rel, err := plan.Project.RelativePath(path)
	if err != nil {
		return err
	}
	for _, config := range plan.Target.BuildConfigurations {
		config.Settings["GCC_PREFIX_HEADER"] = rel
	}
	plan.WrittenArtifacts = append(plan.WrittenArtifacts, path)
	return nil
}

// generateBridgeMetadata runs only when bridge support is enabled. It must
// run after the prefix header so any header contribution is visible, and
// before the resources script, which consumes the recorded reference.
func (p *SupportArtifactPipeline) generateBridgeMetadata(plan *InstallPlan) error {
	if !plan.GenerateBridgeSupport {
		return nil
	}
	lib := plan.Library
	headers := make([]string, 0, len(plan.Target.Headers))
	for _, ref := range plan.Target.Headers {
		headers = append(headers, ref.Path)
	}
	gen := &generator.BridgeMetadata{Headers: headers}
	path := lib.Sandbox.BridgeSupportPath(lib.Label)
	if err := gen.SaveAs(path); err != nil {
		return err
	}
	if _, err := p.Registry.Register(plan.Group, path); err != nil {
		return err
	}
	rel, err := plan.Project.RelativePath(path)
	if err != nil {
		return err
	}
	plan.BridgeSupportRef = rel
	plan.WrittenArtifacts = append(plan.WrittenArtifacts, path)
	return nil
}

// generateResourcesScript flattens every accessor's resources into one
// relative-path list, appends the bridge reference if the bridge step ran,
// and writes the staging script. No target mutation.
func (p *SupportArtifactPipeline) generateResourcesScript(plan *InstallPlan) error {
	lib := plan.Library
	var resources []string
	for _, fa := range lib.FileAccessors {
		for _, res := range fa.ResourceFiles {
			rel, err := plan.Project.RelativePath(res)
			if err != nil {
				return err
			}
			resources = append(resources, rel)
		}
	}
	if plan.BridgeSupportRef != "" {
		resources = append(resources, plan.BridgeSupportRef)
	}
	gen := &generator.CopyResourcesScript{Resources: resources}
	path := lib.Sandbox.ResourcesScriptPath(lib.Label)
	if err := gen.SaveAs(path); err != nil {
		return err
	}
	if _, err := p.Registry.Register(plan.Group, path); err != nil {
		return err
	}
	plan.WrittenArtifacts = append(plan.WrittenArtifacts, path)
	return nil
}

// generateAcknowledgements derives one output per document kind from the
// shared base path.
func (p *SupportArtifactPipeline) generateAcknowledgements(plan *InstallPlan) error {
	lib := plan.Library
	gen := &generator.Acknowledgements{Specs: lib.Specs()}
	paths, err := gen.SaveAll(lib.Sandbox.AcknowledgementsBasePath(lib.Label))
	if err != nil {
		return err
	}
	for _, path := range paths {
		if _, err := p.Registry.Register(plan.Group, path); err != nil {
			return err
		}
		plan.WrittenArtifacts = append(plan.WrittenArtifacts, path)
	}
	return nil
}

// generateDummySource writes the placeholder compilation unit. This is the
// only support artifact that is itself compiled: its reference is appended
// to the target's sources.
func (p *SupportArtifactPipeline) generateDummySource(plan *InstallPlan) error {
	lib := plan.Library
	gen := &generator.DummySource{TargetName: plan.Target.Name}
	path := lib.Sandbox.PlaceholderSourcePath(lib.Label)
	if err := gen.SaveAs(path); err != nil {
		return err
	}
	ref, err := p.Registry.Register(plan.Group, path)
	if err != nil {
		return err
	}
	plan.Target.AddSource(ref, "")
	plan.WrittenArtifacts = append(plan.WrittenArtifacts, path)
	return nil
}
