package installer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightconcept/peridot-go/internal/core/installer"
	"github.com/nightconcept/peridot-go/internal/core/library"
	"github.com/nightconcept/peridot-go/internal/core/platform"
	"github.com/nightconcept/peridot-go/internal/core/sandbox"
	"github.com/nightconcept/peridot-go/internal/core/xcodeproj"
)

func newLibrary(t *testing.T, label, platformName, deploymentTarget string) *library.Library {
	t.Helper()
	return library.New(label, platform.MustNew(platformName, deploymentTarget), sandbox.New(t.TempDir()))
}

func TestTargetBuilder_Create(t *testing.T) {
	t.Parallel()
	proj := xcodeproj.New("/sandbox")
	lib := newLibrary(t, "Pods-App", platform.IOS, "5.0")

	builder := &installer.TargetBuilder{Project: proj}
	target, err := builder.Create(lib)
	require.NoError(t, err)

	assert.Equal(t, "Pods-App", target.Name)
	assert.Equal(t, "ios", target.Platform)
	assert.Equal(t, "5.0", target.DeploymentTarget)
	assert.Same(t, target, lib.Target())
}

func TestTargetBuilder_LegacyArchOverlay(t *testing.T) {
	t.Parallel()
	proj := xcodeproj.New("/sandbox")
	lib := newLibrary(t, "Pods-Legacy", platform.IOS, "4.0")

	target, err := (&installer.TargetBuilder{Project: proj}).Create(lib)
	require.NoError(t, err)

	for _, name := range []string{"Debug", "Release"} {
		config := target.Configuration(name)
		require.NotNil(t, config)
		assert.Equal(t, "armv6 armv7", config.Settings["ARCHS"], name)
	}
}

func TestTargetBuilder_OverlayPreservesInheritedKeys(t *testing.T) {
	t.Parallel()
	proj := xcodeproj.New("/sandbox")
	lib := newLibrary(t, "Pods-App", platform.IOS, "4.0")
	lib.InhibitWarnings = true

	target, err := (&installer.TargetBuilder{Project: proj}).Create(lib)
	require.NoError(t, err)

	debug := target.Configuration("Debug")
	assert.Equal(t, "YES", debug.Settings["GCC_WARN_INHIBIT_ALL_WARNINGS"])
	assert.Equal(t, "YES", debug.Settings["ONLY_ACTIVE_ARCH"], "inherited default keys survive the merge")
}

func TestTargetBuilder_NoOverlayWithoutTriggers(t *testing.T) {
	t.Parallel()
	proj := xcodeproj.New("/sandbox")
	lib := newLibrary(t, "Pods-App", platform.IOS, "6.0")

	target, err := (&installer.TargetBuilder{Project: proj}).Create(lib)
	require.NoError(t, err)

	debug := target.Configuration("Debug")
	assert.NotContains(t, debug.Settings, "ARCHS")
	assert.NotContains(t, debug.Settings, "GCC_WARN_INHIBIT_ALL_WARNINGS")
}

func TestTargetBuilder_CustomConfigurations(t *testing.T) {
	t.Parallel()
	proj := xcodeproj.New("/sandbox")
	lib := newLibrary(t, "Pods-App", platform.IOS, "6.0")
	lib.CustomConfigurations["Staging"] = "release"
	lib.CustomConfigurations["Dev"] = "debug"

	target, err := (&installer.TargetBuilder{Project: proj}).Create(lib)
	require.NoError(t, err)

	staging := target.Configuration("Staging")
	require.NotNil(t, staging, "custom configuration must exist on the target")
	assert.Equal(t, "YES", staging.Settings["VALIDATE_PRODUCT"], "settings copied from Release base")

	dev := target.Configuration("Dev")
	require.NotNil(t, dev)
	assert.Equal(t, "0", dev.Settings["GCC_OPTIMIZATION_LEVEL"], "settings copied from Debug base")

	// Both configuration lists received the new entries.
	projectNames := make(map[string]bool)
	for _, c := range proj.BuildConfigurations {
		projectNames[c.Name] = true
	}
	assert.True(t, projectNames["Staging"])
	assert.True(t, projectNames["Dev"])
}

func TestTargetBuilder_CustomConfigurationCopyIsDetached(t *testing.T) {
	t.Parallel()
	proj := xcodeproj.New("/sandbox")
	lib := newLibrary(t, "Pods-App", platform.IOS, "6.0")
	lib.CustomConfigurations["Staging"] = "release"

	target, err := (&installer.TargetBuilder{Project: proj}).Create(lib)
	require.NoError(t, err)

	target.Configuration("Staging").Settings["X"] = "1"
	assert.NotContains(t, target.Configuration("Release").Settings, "X")
}

func TestTargetBuilder_UnknownBaseType(t *testing.T) {
	t.Parallel()
	proj := xcodeproj.New("/sandbox")
	lib := newLibrary(t, "Pods-App", platform.IOS, "6.0")
	lib.CustomConfigurations["Weird"] = "profile"

	_, err := (&installer.TargetBuilder{Project: proj}).Create(lib)
	require.Error(t, err)
	var conflict *installer.ConfigurationConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Contains(t, conflict.Error(), "unknown base type")
}

func TestTargetBuilder_BaseTypeCaseNormalized(t *testing.T) {
	t.Parallel()
	proj := xcodeproj.New("/sandbox")
	lib := newLibrary(t, "Pods-App", platform.IOS, "6.0")
	lib.CustomConfigurations["QA"] = "RELEASE"

	target, err := (&installer.TargetBuilder{Project: proj}).Create(lib)
	require.NoError(t, err)
	require.NotNil(t, target.Configuration("QA"))
}

func TestTargetBuilder_CustomConfigurationOverlayIsolatedPerLibrary(t *testing.T) {
	t.Parallel()
	proj := xcodeproj.New("/sandbox")
	builder := &installer.TargetBuilder{Project: proj}

	first := newLibrary(t, "Pods", platform.IOS, "6.0")
	first.InhibitWarnings = true
	first.CustomConfigurations["AdHoc"] = "debug"
	_, err := builder.Create(first)
	require.NoError(t, err)

	second := newLibrary(t, "Pods-Tests", platform.IOS, "6.0")
	second.CustomConfigurations["AdHoc"] = "debug"
	target, err := builder.Create(second)
	require.NoError(t, err)

	adHoc := target.Configuration("AdHoc")
	require.NotNil(t, adHoc)
	assert.NotContains(t, adHoc.Settings, "GCC_WARN_INHIBIT_ALL_WARNINGS",
		"another library's overlay must not leak into this target")
	assert.Equal(t, target.Configuration("Debug").Settings, adHoc.Settings,
		"inherits from this target's own base configuration")
}

func TestTargetBuilder_ProjectCopyDerivedFromProjectBase(t *testing.T) {
	t.Parallel()
	proj := xcodeproj.New("/sandbox")
	lib := newLibrary(t, "Pods", platform.IOS, "6.0")
	lib.InhibitWarnings = true
	lib.CustomConfigurations["AdHoc"] = "debug"

	_, err := (&installer.TargetBuilder{Project: proj}).Create(lib)
	require.NoError(t, err)

	projCopy := proj.Configuration("AdHoc")
	require.NotNil(t, projCopy)
	assert.NotContains(t, projCopy.Settings, "GCC_WARN_INHIBIT_ALL_WARNINGS",
		"project-level copy derives from the project's base, not the overlaid target copy")
	assert.Equal(t, "0", projCopy.Settings["GCC_OPTIMIZATION_LEVEL"])
}

func TestTargetBuilder_SharedCustomConfigurationAddedToProjectOnce(t *testing.T) {
	t.Parallel()
	proj := xcodeproj.New("/sandbox")
	builder := &installer.TargetBuilder{Project: proj}

	for _, label := range []string{"Pods", "Pods-Tests"} {
		lib := newLibrary(t, label, platform.IOS, "6.0")
		lib.CustomConfigurations["AdHoc"] = "release"
		_, err := builder.Create(lib)
		require.NoError(t, err)
	}

	count := 0
	for _, c := range proj.BuildConfigurations {
		if c.Name == "AdHoc" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestTargetBuilder_DuplicateTargetName(t *testing.T) {
	t.Parallel()
	proj := xcodeproj.New("/sandbox")
	first := newLibrary(t, "Pods-App", platform.IOS, "6.0")
	second := newLibrary(t, "Pods-App", platform.IOS, "6.0")

	builder := &installer.TargetBuilder{Project: proj}
	_, err := builder.Create(first)
	require.NoError(t, err)

	_, err = builder.Create(second)
	require.Error(t, err)
	var conflict *installer.ConfigurationConflictError
	assert.True(t, errors.As(err, &conflict))
}
