// Package xcodeproj_test contains tests for the xcodeproj package.
package xcodeproj_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightconcept/peridot-go/internal/core/xcodeproj"
)

func TestNewTarget(t *testing.T) {
	t.Parallel()
	proj := xcodeproj.New("/sandbox")
	target, err := proj.NewTarget("Pods-AFNetworking", "ios", "5.0")
	require.NoError(t, err)
	assert.Equal(t, "Pods-AFNetworking", target.Name)
	require.Len(t, target.BuildConfigurations, 2)
	assert.NotNil(t, target.Configuration("Debug"))
	assert.NotNil(t, target.Configuration("Release"))
}

func TestNewTarget_CopiesDefaultSettings(t *testing.T) {
	t.Parallel()
	proj := xcodeproj.New("/sandbox")
	target, err := proj.NewTarget("Pods", "ios", "6.0")
	require.NoError(t, err)

	debug := target.Configuration("Debug")
	debug.Settings["CUSTOM"] = "1"
	assert.NotContains(t, proj.BuildConfigurations[0].Settings, "CUSTOM",
		"target configurations must be copies, not aliases, of project defaults")
}

func TestNewTarget_DuplicateName(t *testing.T) {
	t.Parallel()
	proj := xcodeproj.New("/sandbox")
	_, err := proj.NewTarget("Pods", "ios", "5.0")
	require.NoError(t, err)
	_, err = proj.NewTarget("Pods", "ios", "5.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestFileReference_Reuse(t *testing.T) {
	t.Parallel()
	proj := xcodeproj.New("/sandbox")
	a := proj.FileReference("AFNetworking/AFHTTPClient.m")
	b := proj.FileReference("AFNetworking/AFHTTPClient.m")
	c := proj.FileReference("AFNetworking/AFURLConnectionOperation.m")
	assert.Same(t, a, b, "identical paths must reuse the same reference")
	assert.NotSame(t, a, c)
}

func TestAddSystemFramework_Idempotent(t *testing.T) {
	t.Parallel()
	proj := xcodeproj.New("/sandbox")
	target, err := proj.NewTarget("Pods", "ios", "5.0")
	require.NoError(t, err)

	proj.AddSystemFramework("SystemConfiguration", target)
	proj.AddSystemFramework("SystemConfiguration", target)
	require.Len(t, target.Frameworks, 1, "duplicate links must collapse")
	assert.Equal(t, "System/Library/Frameworks/SystemConfiguration.framework", target.Frameworks[0].Path)
	assert.Equal(t, "SDKROOT", target.Frameworks[0].SourceTree)
}

func TestGroupNewFile_NoDedup(t *testing.T) {
	t.Parallel()
	g := &xcodeproj.Group{Name: "Pods-Foo"}
	a := g.NewFile("Pods-Foo.xcconfig")
	b := g.NewFile("Pods-Foo.xcconfig")
	assert.NotSame(t, a, b, "group registration creates a fresh reference per call")
	assert.Len(t, g.Files, 2)
}

func TestRelativePath(t *testing.T) {
	t.Parallel()
	proj := xcodeproj.New("/sandbox/Pods")
	rel, err := proj.RelativePath("/sandbox/Pods/Pods-Foo/Pods-Foo.xcconfig")
	require.NoError(t, err)
	assert.Equal(t, "Pods-Foo/Pods-Foo.xcconfig", rel)

	outside, err := proj.RelativePath("/sandbox/other/file.h")
	require.NoError(t, err)
	assert.Equal(t, "../other/file.h", outside)
}

func TestSave(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	proj := xcodeproj.New(dir)
	_, err := proj.NewTarget("Pods", "ios", "5.0")
	require.NoError(t, err)

	path := filepath.Join(dir, "project.json")
	require.NoError(t, proj.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Pods"`)
	assert.Contains(t, string(data), `"targets"`)
}
