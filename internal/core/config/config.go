package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const PodfileName = "podfile.toml"

// Podfile is the parsed model of the podfile.toml manifest driving an
// installation run.
type Podfile struct {
	Project        ProjectInfo                 `toml:"project"`
	Options        Options                     `toml:"options,omitempty"`
	Configurations map[string]string           `toml:"configurations,omitempty"` // name -> base type ("debug"/"release")
	Targets        map[string]TargetDefinition `toml:"targets,omitempty"`
	Pods           map[string]Pod              `toml:"pods,omitempty"`
}

// ProjectInfo holds the integrating project's metadata.
type ProjectInfo struct {
	Name             string `toml:"name"`
	Platform         string `toml:"platform"` // "ios" or "osx"
	DeploymentTarget string `toml:"deployment_target,omitempty"`
}

// Options are project-wide installation toggles.
type Options struct {
	GenerateBridgeSupport   bool `toml:"generate_bridge_support,omitempty"`
	SetARCCompatibilityFlag bool `toml:"set_arc_compatibility_flag,omitempty"`
	InhibitAllWarnings      bool `toml:"inhibit_all_warnings,omitempty"`
	// PodsRoot overrides the PODS_ROOT value written to generated settings
	// files, for projects that keep the sandbox somewhere other than
	// ${SRCROOT}/Pods.
	PodsRoot string `toml:"pods_root,omitempty"`
}

// TargetDefinition groups pods into one native target.
type TargetDefinition struct {
	Pods []string `toml:"pods"`
}

// Pod points at the specification for one pod.
type Pod struct {
	// Spec is a local *.podspec.yaml path, an http(s) URL, or a
	// "github:owner/repo/path@ref" shorthand.
	Spec string `toml:"spec"`
}

// LoadPodfile reads podfile.toml from the given dirPath and unmarshals it.
func LoadPodfile(dirPath string) (*Podfile, error) {
	fullPath := filepath.Join(dirPath, PodfileName)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, err
	}

	var pf Podfile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return nil, err
	}
	return &pf, nil
}

// WritePodfile marshals the Podfile and writes it to the specified dirPath,
// overwriting any existing file.
func WritePodfile(dirPath string, data *Podfile) error {
	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(data); err != nil {
		return err
	}

	fullPath := filepath.Join(dirPath, PodfileName)
	file, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	_, err = file.Write(buf.Bytes())
	return err
}

// TargetLabel derives the native-target label for a target-definition name.
// The default definition installs as plain "Pods".
func TargetLabel(definitionName string) string {
	if definitionName == "" || definitionName == "default" {
		return "Pods"
	}
	return "Pods-" + definitionName
}
