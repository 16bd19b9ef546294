package lockfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const LockfileName = "prd-lock.toml"
const APIVersion = "1"

// PodEntry records one installed pod: its version, where its spec came from
// and the fingerprint of every artifact generated for it. Artifact paths are
// sandbox-relative.
type PodEntry struct {
	Version   string            `toml:"version"`
	Source    string            `toml:"source,omitempty"`
	Artifacts map[string]string `toml:"artifacts,omitempty"` // relative path -> "sha256:<hash>"
}

// TargetEntry records the artifacts generated for one native target,
// keyed by sandbox-relative path.
type TargetEntry struct {
	Artifacts map[string]string `toml:"artifacts"` // relative path -> "sha256:<hash>"
}

// Lockfile is the model of prd-lock.toml, written after every successful
// installation run.
type Lockfile struct {
	ApiVersion string                 `toml:"api_version"`
	Pods       map[string]PodEntry    `toml:"pods"`
	Targets    map[string]TargetEntry `toml:"targets,omitempty"`
}

// New creates an empty lockfile at the current API version.
func New() *Lockfile {
	return &Lockfile{
		ApiVersion: APIVersion,
		Pods:       make(map[string]PodEntry),
		Targets:    make(map[string]TargetEntry),
	}
}

// Load reads the lockfile from the project root. A missing file yields a
// fresh lockfile rather than an error.
func Load(projectRoot string) (*Lockfile, error) {
	lockfilePath := filepath.Join(projectRoot, LockfileName)
	lf := New()

	if _, err := os.Stat(lockfilePath); os.IsNotExist(err) {
		return lf, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat lockfile %s: %w", lockfilePath, err)
	}

	if _, err := toml.DecodeFile(lockfilePath, &lf); err != nil {
		return nil, fmt.Errorf("failed to decode lockfile %s: %w", lockfilePath, err)
	}
	if lf.ApiVersion == "" {
		lf.ApiVersion = APIVersion
	}
	if lf.Pods == nil {
		lf.Pods = make(map[string]PodEntry)
	}
	if lf.Targets == nil {
		lf.Targets = make(map[string]TargetEntry)
	}
	return lf, nil
}

// Save writes the lockfile to the project root.
func Save(projectRoot string, lf *Lockfile) error {
	lockfilePath := filepath.Join(projectRoot, LockfileName)
	file, err := os.Create(lockfilePath)
	if err != nil {
		return fmt.Errorf("failed to create lockfile %s: %w", lockfilePath, err)
	}
	defer func() { _ = file.Close() }()

	if err := toml.NewEncoder(file).Encode(lf); err != nil {
		return fmt.Errorf("failed to encode lockfile %s: %w", lockfilePath, err)
	}
	return nil
}

// RecordPod adds or replaces the entry for one installed pod.
func (lf *Lockfile) RecordPod(name, version, source string, artifacts map[string]string) {
	if lf.Pods == nil {
		lf.Pods = make(map[string]PodEntry)
	}
	lf.Pods[name] = PodEntry{
		Version:   version,
		Source:    source,
		Artifacts: artifacts,
	}
}

// RecordTarget adds or replaces the artifact fingerprints of one installed
// native target.
func (lf *Lockfile) RecordTarget(label string, artifacts map[string]string) {
	if lf.Targets == nil {
		lf.Targets = make(map[string]TargetEntry)
	}
	lf.Targets[label] = TargetEntry{Artifacts: artifacts}
}
