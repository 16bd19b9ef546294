package sandbox

import "path/filepath"

// Sandbox is the directory that holds downloaded pods and generated support
// files. All well-known artifact paths for a library derive from its root;
// this package does no I/O of its own.
type Sandbox struct {
	Root string
}

// New returns a sandbox rooted at the given absolute path.
func New(root string) *Sandbox {
	return &Sandbox{Root: root}
}

// SupportFilesDir is the directory holding one library's generated artifacts.
func (s *Sandbox) SupportFilesDir(label string) string {
	return filepath.Join(s.Root, "Target Support Files", label)
}

// SettingsFilePath is the build-settings (xcconfig) path for a library.
func (s *Sandbox) SettingsFilePath(label string) string {
	return filepath.Join(s.SupportFilesDir(label), label+".xcconfig")
}

// UmbrellaHeaderPath is the generated environment header enumerating the
// library's installed specifications.
func (s *Sandbox) UmbrellaHeaderPath(label string) string {
	return filepath.Join(s.SupportFilesDir(label), label+"-environment.h")
}

// PrefixHeaderPath is the generated prefix header for a library.
func (s *Sandbox) PrefixHeaderPath(label string) string {
	return filepath.Join(s.SupportFilesDir(label), label+"-prefix.pch")
}

// BridgeSupportPath is the generated bridge metadata path for a library.
func (s *Sandbox) BridgeSupportPath(label string) string {
	return filepath.Join(s.SupportFilesDir(label), label+".bridgesupport")
}

// ResourcesScriptPath is the generated resource-staging script path.
func (s *Sandbox) ResourcesScriptPath(label string) string {
	return filepath.Join(s.SupportFilesDir(label), label+"-resources.sh")
}

// AcknowledgementsBasePath is the extension-less base path the
// acknowledgement documents derive their output paths from.
func (s *Sandbox) AcknowledgementsBasePath(label string) string {
	return filepath.Join(s.SupportFilesDir(label), label+"-acknowledgements")
}

// PlaceholderSourcePath is the generated dummy compilation unit path.
func (s *Sandbox) PlaceholderSourcePath(label string) string {
	return filepath.Join(s.SupportFilesDir(label), label+"-dummy.m")
}

// PodDir is the checkout directory of one pod inside the sandbox.
func (s *Sandbox) PodDir(name string) string {
	return filepath.Join(s.Root, name)
}

// ManifestPath is the path of the serialized project document.
func (s *Sandbox) ManifestPath() string {
	return filepath.Join(s.Root, "project.json")
}
