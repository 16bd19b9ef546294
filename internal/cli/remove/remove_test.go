package remove

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/nightconcept/peridot-go/internal/core/config"
)

func runRemoveCommand(t *testing.T, args ...string) error {
	t.Helper()
	app := &cli.App{
		Commands:       []*cli.Command{NewRemoveCommand()},
		ExitErrHandler: func(*cli.Context, error) {},
	}
	return app.Run(append([]string{"prd", "remove"}, args...))
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	originalWd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWd)) })

	tempDir := t.TempDir()
	require.NoError(t, os.Chdir(tempDir))
	return tempDir
}

const podfileWithPods = `
[project]
name = "App"
platform = "ios"

[targets.default]
pods = ["AFNetworking", "Reachability"]

[targets.Tests]
pods = ["AFNetworking"]

[pods.AFNetworking]
spec = "specs/AFNetworking.podspec.yaml"

[pods.Reachability]
spec = "specs/Reachability.podspec.yaml"
`

func TestRemove_Successful(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.PodfileName), []byte(podfileWithPods), 0644))

	require.NoError(t, runRemoveCommand(t, "AFNetworking"))

	pf, err := config.LoadPodfile(dir)
	require.NoError(t, err)
	assert.NotContains(t, pf.Pods, "AFNetworking")
	assert.Contains(t, pf.Pods, "Reachability")
	assert.Equal(t, []string{"Reachability"}, pf.Targets["default"].Pods, "removed from every target definition")
	assert.Empty(t, pf.Targets["Tests"].Pods)
}

func TestRemove_UnknownPod(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.PodfileName), []byte(podfileWithPods), 0644))

	err := runRemoveCommand(t, "Ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not declared")
}

func TestRemove_MissingPodfile(t *testing.T) {
	chdirTemp(t)
	err := runRemoveCommand(t, "AFNetworking")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "podfile.toml not found")
}

func TestRemove_NoArguments(t *testing.T) {
	chdirTemp(t)
	err := runRemoveCommand(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one pod name")
}
