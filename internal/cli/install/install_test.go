// Package install_test contains tests for the install command.
package install_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/nightconcept/peridot-go/internal/cli/install"
	"github.com/nightconcept/peridot-go/internal/core/lockfile"
)

func runInstall(t *testing.T, dir string, extraArgs ...string) error {
	t.Helper()
	app := &cli.App{
		Commands:       []*cli.Command{install.NewInstallCommand()},
		ExitErrHandler: func(*cli.Context, error) {},
	}
	args := append([]string{"prd", "install", "--project-directory", dir}, extraArgs...)
	return app.Run(args)
}

func writeProject(t *testing.T, dir, podfile string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "podfile.toml"), []byte(podfile), 0644))
	specDir := filepath.Join(dir, "specs")
	require.NoError(t, os.MkdirAll(specDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(specDir, "AFNetworking.podspec.yaml"), []byte(`
name: AFNetworking
version: 1.3.0
license: MIT
requires_arc: true
frameworks: [SystemConfiguration]
source_files:
  - AFHTTPClient.m
public_header_files:
  - AFHTTPClient.h
platforms:
  ios: "5.0"
`), 0644))
}

const testPodfile = `
[project]
name = "MyApp"
platform = "ios"
deployment_target = "6.0"

[targets.default]
pods = ["AFNetworking"]

[pods.AFNetworking]
spec = "specs/AFNetworking.podspec.yaml"
`

func TestInstall_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, testPodfile)

	require.NoError(t, runInstall(t, dir))

	supportDir := filepath.Join(dir, "Pods", "Target Support Files", "Pods")
	for _, name := range []string{
		"Pods.xcconfig",
		"Pods-environment.h",
		"Pods-prefix.pch",
		"Pods-resources.sh",
		"Pods-acknowledgements.markdown",
		"Pods-acknowledgements.plist",
		"Pods-dummy.m",
	} {
		_, err := os.Stat(filepath.Join(supportDir, name))
		assert.NoError(t, err, "expected artifact %s", name)
	}

	// No bridge metadata without the option.
	_, err := os.Stat(filepath.Join(supportDir, "Pods.bridgesupport"))
	assert.True(t, os.IsNotExist(err))

	// Project document written.
	_, err = os.Stat(filepath.Join(dir, "Pods", "project.json"))
	assert.NoError(t, err)
}

func TestInstall_WritesLockfile(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, testPodfile)

	require.NoError(t, runInstall(t, dir))

	lf, err := lockfile.Load(dir)
	require.NoError(t, err)
	require.Contains(t, lf.Pods, "AFNetworking")
	assert.Equal(t, "1.3.0", lf.Pods["AFNetworking"].Version)

	require.Contains(t, lf.Targets, "Pods")
	artifacts := lf.Targets["Pods"].Artifacts
	require.NotEmpty(t, artifacts)
	assert.Contains(t, artifacts, "Target Support Files/Pods/Pods.xcconfig")
	for path, hash := range artifacts {
		assert.Regexp(t, "^sha256:[0-9a-f]{64}$", hash, path)
	}
}

func TestInstall_BridgeSupportOption(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, `
[project]
name = "MyApp"
platform = "ios"

[options]
generate_bridge_support = true

[targets.default]
pods = ["AFNetworking"]

[pods.AFNetworking]
spec = "specs/AFNetworking.podspec.yaml"
`)

	require.NoError(t, runInstall(t, dir))

	bridge := filepath.Join(dir, "Pods", "Target Support Files", "Pods", "Pods.bridgesupport")
	_, err := os.Stat(bridge)
	require.NoError(t, err)

	script, err := os.ReadFile(filepath.Join(dir, "Pods", "Target Support Files", "Pods", "Pods-resources.sh"))
	require.NoError(t, err)
	assert.Contains(t, string(script), "Pods.bridgesupport")
}

func TestInstall_PodsRootOption(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, `
[project]
name = "MyApp"
platform = "ios"

[options]
pods_root = "${SRCROOT}/Vendor/Pods"

[targets.default]
pods = ["AFNetworking"]

[pods.AFNetworking]
spec = "specs/AFNetworking.podspec.yaml"
`)

	require.NoError(t, runInstall(t, dir))

	xcconfig, err := os.ReadFile(filepath.Join(dir, "Pods", "Target Support Files", "Pods", "Pods.xcconfig"))
	require.NoError(t, err)
	assert.Contains(t, string(xcconfig), "PODS_ROOT = ${SRCROOT}/Vendor/Pods")
}

func TestInstall_MissingPodfile(t *testing.T) {
	err := runInstall(t, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "podfile.toml not found")
}

func TestInstall_UndeclaredPod(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "podfile.toml"), []byte(`
[project]
name = "MyApp"
platform = "ios"

[targets.default]
pods = ["Ghost"]
`), 0644))

	err := runInstall(t, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Ghost" is not declared`)
}

func TestInstall_CustomConfigurations(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, `
[project]
name = "MyApp"
platform = "ios"

[configurations]
Staging = "release"

[targets.default]
pods = ["AFNetworking"]

[pods.AFNetworking]
spec = "specs/AFNetworking.podspec.yaml"
`)

	require.NoError(t, runInstall(t, dir))

	doc, err := os.ReadFile(filepath.Join(dir, "Pods", "project.json"))
	require.NoError(t, err)
	assert.Contains(t, string(doc), `"Staging"`)
}
