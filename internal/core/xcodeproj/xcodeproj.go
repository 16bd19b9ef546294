package xcodeproj

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Project is an in-memory model of the generated Pods project document. It is
// mutated in place by the installer and serialized only on demand; the model
// assumes a single writer per run.
type Project struct {
	RootPath string // absolute path the project's relative paths resolve against

	Targets []*NativeTarget

	// BuildConfigurations is the project-level configuration list. Targets
	// created through NewTarget start with copies of these.
	BuildConfigurations []*BuildConfiguration

	// SupportFilesGroup is the parent group for per-target support groups.
	SupportFilesGroup *Group

	fileReferences map[string]*FileReference // keyed by project-relative path
	frameworkRefs  map[string]*FileReference // keyed by framework name
}

// New creates an empty project rooted at rootPath with default Debug and
// Release configurations.
func New(rootPath string) *Project {
	return &Project{
		RootPath: rootPath,
		BuildConfigurations: []*BuildConfiguration{
			{Name: "Debug", Settings: map[string]string{"ONLY_ACTIVE_ARCH": "YES", "GCC_OPTIMIZATION_LEVEL": "0"}},
			{Name: "Release", Settings: map[string]string{"VALIDATE_PRODUCT": "YES"}},
		},
		SupportFilesGroup: &Group{Name: "Targets Support Files"},
		fileReferences:    make(map[string]*FileReference),
		frameworkRefs:     make(map[string]*FileReference),
	}
}

// NativeTarget is one build target inside the project.
type NativeTarget struct {
	Name             string
	Platform         string
	DeploymentTarget string

	BuildConfigurations []*BuildConfiguration

	Sources    []*BuildFile     // compiled sources with per-file settings
	Headers    []*FileReference // header build phase
	Frameworks []*FileReference // linked frameworks
}

// BuildConfiguration is a named settings mapping, optionally based on an
// xcconfig file reference.
type BuildConfiguration struct {
	Name              string
	Settings          map[string]string
	BaseConfiguration *FileReference
}

// FileReference is a reference to one file, identified by its
// project-relative path.
type FileReference struct {
	Path        string
	SourceTree  string // "<group>" or "SDKROOT" for system frameworks
	IsFramework bool
}

// BuildFile pairs a file reference with per-file build settings, the way
// compiled sources carry their compiler flags.
type BuildFile struct {
	Ref           *FileReference
	CompilerFlags string
}

// Group is a logical container of file references. Groups do not mirror the
// filesystem; they only organize references.
type Group struct {
	Name     string
	Children []*Group
	Files    []*FileReference
}

// NewGroup creates a child group with the given name and returns it.
func (g *Group) NewGroup(name string) *Group {
	child := &Group{Name: name}
	g.Children = append(g.Children, child)
	return child
}

// NewFile creates a file reference for a project-relative path inside the
// group. Every call produces a new reference; callers own deduplication.
func (g *Group) NewFile(relativePath string) *FileReference {
	ref := &FileReference{Path: relativePath, SourceTree: "<group>"}
	g.Files = append(g.Files, ref)
	return ref
}

// NewTarget creates a native target with copies of the project-level default
// configurations. It fails if a target with the same name already exists.
func (p *Project) NewTarget(name, platformName, deploymentTarget string) (*NativeTarget, error) {
	for _, t := range p.Targets {
		if t.Name == name {
			return nil, fmt.Errorf("target %q already exists in project", name)
		}
	}
	target := &NativeTarget{
		Name:             name,
		Platform:         platformName,
		DeploymentTarget: deploymentTarget,
	}
	for _, base := range p.BuildConfigurations {
		target.BuildConfigurations = append(target.BuildConfigurations, &BuildConfiguration{
			Name:     base.Name,
			Settings: copySettings(base.Settings),
		})
	}
	p.Targets = append(p.Targets, target)
	return target, nil
}

// Configuration returns the project-level build configuration with the
// given name, or nil if absent.
func (p *Project) Configuration(name string) *BuildConfiguration {
	for _, c := range p.BuildConfigurations {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Configuration returns the target's build configuration with the given
// name, or nil if absent.
func (t *NativeTarget) Configuration(name string) *BuildConfiguration {
	for _, c := range t.BuildConfigurations {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AddSource appends a compiled-source entry to the target.
func (t *NativeTarget) AddSource(ref *FileReference, compilerFlags string) {
	t.Sources = append(t.Sources, &BuildFile{Ref: ref, CompilerFlags: compilerFlags})
}

// AddHeader appends a header reference to the target's header phase.
func (t *NativeTarget) AddHeader(ref *FileReference) {
	t.Headers = append(t.Headers, ref)
}

// FileReference returns the project's reference for a project-relative path,
// creating it on first use and reusing it afterwards.
func (p *Project) FileReference(relativePath string) *FileReference {
	if ref, ok := p.fileReferences[relativePath]; ok {
		return ref
	}
	ref := &FileReference{Path: relativePath, SourceTree: "<group>"}
	p.fileReferences[relativePath] = ref
	return ref
}

// AddSystemFramework ensures a system-framework reference exists in the
// project and is linked to the target. Linking is idempotent: linking the
// same framework twice does not duplicate the link.
func (p *Project) AddSystemFramework(name string, target *NativeTarget) *FileReference {
	ref, ok := p.frameworkRefs[name]
	if !ok {
		ref = &FileReference{
			Path:        fmt.Sprintf("System/Library/Frameworks/%s.framework", name),
			SourceTree:  "SDKROOT",
			IsFramework: true,
		}
		p.frameworkRefs[name] = ref
	}
	for _, linked := range target.Frameworks {
		if linked == ref {
			return ref
		}
	}
	target.Frameworks = append(target.Frameworks, ref)
	return ref
}

// RelativePath returns absPath relative to the project root. Paths outside
// the root are returned with the necessary "../" segments.
func (p *Project) RelativePath(absPath string) (string, error) {
	rel, err := filepath.Rel(p.RootPath, absPath)
	if err != nil {
		return "", fmt.Errorf("cannot relativize %q against project root %q: %w", absPath, p.RootPath, err)
	}
	return filepath.ToSlash(rel), nil
}

// SortedFrameworkNames returns the names of all system frameworks referenced
// by the project, sorted for stable output.
func (p *Project) SortedFrameworkNames() []string {
	names := make([]string, 0, len(p.frameworkRefs))
	for name := range p.frameworkRefs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func copySettings(settings map[string]string) map[string]string {
	out := make(map[string]string, len(settings))
	for k, v := range settings {
		out[k] = v
	}
	return out
}
