package generator

import (
	"fmt"
	"strings"

	"github.com/nightconcept/peridot-go/internal/core/platform"
	"github.com/nightconcept/peridot-go/internal/core/spec"
)

// EnvironmentHeader renders the umbrella header enumerating the installed
// specifications and their versions.
type EnvironmentHeader struct {
	Specs []*spec.Specification
}

func (h *EnvironmentHeader) Generate() string {
	var b strings.Builder
	b.WriteString("// To check if a library is compiled with CocoaPods you\n")
	b.WriteString("// can use the `COCOAPODS` macro definition which is\n")
	b.WriteString("// defined in the xcconfigs so it is available in\n")
	b.WriteString("// headers also when they are imported in the client\n")
	b.WriteString("// project.\n")
	for _, s := range h.Specs {
		major, minor, patch := versionComponents(s.Version)
		define := strings.ToUpper(strings.NewReplacer("-", "_", "/", "_", ".", "_").Replace(s.Name))
		b.WriteString("\n")
		fmt.Fprintf(&b, "// %s\n", s.Name)
		fmt.Fprintf(&b, "#define COCOAPODS_POD_AVAILABLE_%s\n", define)
		fmt.Fprintf(&b, "#define COCOAPODS_VERSION_MAJOR_%s %s\n", define, major)
		fmt.Fprintf(&b, "#define COCOAPODS_VERSION_MINOR_%s %s\n", define, minor)
		fmt.Fprintf(&b, "#define COCOAPODS_VERSION_PATCH_%s %s\n", define, patch)
	}
	return b.String()
}

func (h *EnvironmentHeader) SaveAs(path string) error {
	return saveContent(path, h.Generate())
}

func versionComponents(version string) (major, minor, patch string) {
	parts := strings.SplitN(version, ".", 3)
	get := func(i int) string {
		if i < len(parts) && parts[i] != "" {
			return parts[i]
		}
		return "0"
	}
	return get(0), get(1), get(2)
}

// PrefixHeader renders the prefix header importing the platform's root
// framework, the umbrella header, and any specification-declared prefix
// content.
type PrefixHeader struct {
	Platform platform.Platform
	Specs    []*spec.Specification

	// EnvironmentHeaderImport is the import line for the umbrella header
	// generated earlier in the pipeline, e.g. `#import "Pods-environment.h"`.
	EnvironmentHeaderImport string
}

func (h *PrefixHeader) Generate() string {
	var b strings.Builder
	b.WriteString("#ifdef __OBJC__\n")
	b.WriteString(h.Platform.RootFrameworkImport())
	b.WriteString("\n#endif\n")
	if h.EnvironmentHeaderImport != "" {
		b.WriteString("\n")
		b.WriteString(h.EnvironmentHeaderImport)
		b.WriteString("\n")
	}
	for _, s := range h.Specs {
		content := strings.TrimSpace(s.PrefixHeader)
		if content == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String()
}

func (h *PrefixHeader) SaveAs(path string) error {
	return saveContent(path, h.Generate())
}
