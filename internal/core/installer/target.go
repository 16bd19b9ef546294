package installer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nightconcept/peridot-go/internal/core/library"
	"github.com/nightconcept/peridot-go/internal/core/xcodeproj"
)

// TargetBuilder materializes the native target for a library and merges its
// build settings across configurations.
type TargetBuilder struct {
	Project *xcodeproj.Project
}

// Create adds the library's native target to the project. Fatal errors
// (duplicate target name, unknown custom-configuration base type) surface as
// ConfigurationConflictError before any file is written.
func (b *TargetBuilder) Create(lib *library.Library) (*xcodeproj.NativeTarget, error) {
	target, err := b.Project.NewTarget(lib.TargetName(), lib.Platform.Name, lib.Platform.DeploymentTargetString())
	if err != nil {
		return nil, &ConfigurationConflictError{Library: lib.Label, Reason: "target creation rejected", Err: err}
	}

	overlay := b.settingsOverlay(lib)
	for _, name := range []string{"Debug", "Release"} {
		if config := target.Configuration(name); config != nil {
			mergeSettings(config.Settings, overlay)
		}
	}

	if err := b.addCustomConfigurations(lib, target); err != nil {
		return nil, err
	}

	if err := lib.SetTarget(target); err != nil {
		return nil, &ConfigurationConflictError{Library: lib.Label, Reason: "target already installed", Err: err}
	}
	return target, nil
}

// settingsOverlay builds the base overlay merged into the default Debug and
// Release configurations. Overlay keys win; inherited keys are preserved.
func (b *TargetBuilder) settingsOverlay(lib *library.Library) map[string]string {
	overlay := map[string]string{}
	if lib.Platform.RequiresLegacyArchitectures() {
		overlay["ARCHS"] = "armv6 armv7"
	}
	if lib.InhibitWarnings {
		overlay["GCC_WARN_INHIBIT_ALL_WARNINGS"] = "YES"
	}
	return overlay
}

func (b *TargetBuilder) addCustomConfigurations(lib *library.Library, target *xcodeproj.NativeTarget) error {
	names := make([]string, 0, len(lib.CustomConfigurations))
	for name := range lib.CustomConfigurations {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		baseType := lib.CustomConfigurations[name]
		baseName := capitalize(baseType)
		base := target.Configuration(baseName)
		if base == nil {
			return &ConfigurationConflictError{
				Library: lib.Label,
				Reason:  fmt.Sprintf("unknown base type %q for custom configuration %q", baseType, name),
			}
		}
		settings := make(map[string]string, len(base.Settings))
		mergeSettings(settings, base.Settings)

		// Targets created after another library declared the same name are
		// seeded with its project-level copy; re-derive from this target's
		// own base so the configuration inherits only this library's overlay.
		if existing := target.Configuration(name); existing != nil {
			existing.Settings = settings
		} else {
			target.BuildConfigurations = append(target.BuildConfigurations,
				&xcodeproj.BuildConfiguration{Name: name, Settings: settings})
		}

		// The project-level copy derives from the project's own base
		// configuration, never from a target copy a library overlay was
		// merged into.
		if b.Project.Configuration(name) == nil {
			projectBase := b.Project.Configuration(baseName)
			if projectBase == nil {
				return &ConfigurationConflictError{
					Library: lib.Label,
					Reason:  fmt.Sprintf("unknown base type %q for custom configuration %q", baseType, name),
				}
			}
			projectSettings := make(map[string]string, len(projectBase.Settings))
			mergeSettings(projectSettings, projectBase.Settings)
			b.Project.BuildConfigurations = append(b.Project.BuildConfigurations,
				&xcodeproj.BuildConfiguration{Name: name, Settings: projectSettings})
		}
	}
	return nil
}

// mergeSettings is a shallow key union with overlay precedence.
func mergeSettings(dst, overlay map[string]string) {
	for k, v := range overlay {
		dst[k] = v
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
