package spec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nightconcept/peridot-go/internal/core/platform"
)

// Specification is the parsed model of a *.podspec.yaml file. Content
// validation happens upstream of installation; the loader only rejects
// unparseable YAML.
type Specification struct {
	Name          string            `yaml:"name"`
	Version       string            `yaml:"version"`
	Summary       string            `yaml:"summary,omitempty"`
	License       string            `yaml:"license,omitempty"`
	Homepage      string            `yaml:"homepage,omitempty"`
	CompilerFlags []string          `yaml:"compiler_flags,omitempty"`
	RequiresARC   bool              `yaml:"requires_arc,omitempty"`
	Frameworks    []string          `yaml:"frameworks,omitempty"`
	Libraries     []string          `yaml:"libraries,omitempty"`
	PrefixHeader  string            `yaml:"prefix_header_contents,omitempty"`
	SourceFiles   []string          `yaml:"source_files,omitempty"`
	PublicHeaders []string          `yaml:"public_header_files,omitempty"`
	Resources     []string          `yaml:"resources,omitempty"`
	Platforms     map[string]string `yaml:"platforms,omitempty"` // platform name -> deployment target

	// Per-platform overlays; keys are platform names ("ios", "osx").
	Subspecs map[string]*PlatformSpec `yaml:"platform_specs,omitempty"`
}

// PlatformSpec holds platform-specific additions to a specification.
type PlatformSpec struct {
	CompilerFlags []string `yaml:"compiler_flags,omitempty"`
	Frameworks    []string `yaml:"frameworks,omitempty"`
	SourceFiles   []string `yaml:"source_files,omitempty"`
	Resources     []string `yaml:"resources,omitempty"`
}

// Load parses a specification from YAML bytes.
func Load(data []byte) (*Specification, error) {
	var s Specification
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode podspec: %w", err)
	}
	return &s, nil
}

// LoadFile parses a specification from a *.podspec.yaml file on disk.
func LoadFile(path string) (*Specification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Consumer returns the per-platform view of the specification's declared
// build requirements for the given platform name.
func (s *Specification) Consumer(platformName string) *Consumer {
	c := &Consumer{
		Spec:          s,
		PlatformName:  platformName,
		CompilerFlags: append([]string(nil), s.CompilerFlags...),
		RequiresARC:   s.RequiresARC,
		Frameworks:    append([]string(nil), s.Frameworks...),
		Libraries:     append([]string(nil), s.Libraries...),
		PrefixHeader:  s.PrefixHeader,
		SourceFiles:   append([]string(nil), s.SourceFiles...),
		PublicHeaders: append([]string(nil), s.PublicHeaders...),
		Resources:     append([]string(nil), s.Resources...),
	}
	if dt, ok := s.Platforms[platformName]; ok {
		c.DeploymentTarget = dt
	}
	if overlay, ok := s.Subspecs[platformName]; ok && overlay != nil {
		c.CompilerFlags = append(c.CompilerFlags, overlay.CompilerFlags...)
		c.Frameworks = append(c.Frameworks, overlay.Frameworks...)
		c.SourceFiles = append(c.SourceFiles, overlay.SourceFiles...)
		c.Resources = append(c.Resources, overlay.Resources...)
	}
	return c
}

// Consumer is the per-platform view of a specification's declared build
// requirements. Declared flag order is preserved.
type Consumer struct {
	Spec             *Specification
	PlatformName     string
	CompilerFlags    []string
	RequiresARC      bool
	Frameworks       []string
	Libraries        []string
	PrefixHeader     string
	SourceFiles      []string
	PublicHeaders    []string
	Resources        []string
	DeploymentTarget string // declared deployment target, "" when absent
}

// DeploymentTargetPlatform resolves the consumer's declared deployment target
// into a Platform value. An absent declaration yields a nil version.
func (c *Consumer) DeploymentTargetPlatform() (platform.Platform, error) {
	return platform.New(c.PlatformName, c.DeploymentTarget)
}
