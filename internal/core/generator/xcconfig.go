package generator

import (
	"sort"
	"strings"

	"github.com/nightconcept/peridot-go/internal/core/spec"
)

// Xcconfig renders the build-settings file for a library from every
// specification consumer plus project-wide toggles.
type Xcconfig struct {
	Consumers []*spec.Consumer

	// PodsRoot is the value of the PODS_ROOT setting, normally
	// "${SRCROOT}/Pods" from the integrating project's point of view.
	PodsRoot string

	// SetARCCompatibilityFlag appends -fobjc-arc to the linker flags so that
	// non-ARC host projects can link ARC pods built for pre-ARC deployment
	// targets.
	SetARCCompatibilityFlag bool
}

// Generate renders the xcconfig content. Keys are emitted sorted for stable
// output; list values keep first-seen order with duplicates collapsed.
func (x *Xcconfig) Generate() string {
	settings := map[string][]string{}
	appendUnique := func(key string, values ...string) {
		for _, v := range values {
			if v == "" {
				continue
			}
			exists := false
			for _, have := range settings[key] {
				if have == v {
					exists = true
					break
				}
			}
			if !exists {
				settings[key] = append(settings[key], v)
			}
		}
	}

	requiresARC := false
	for _, c := range x.Consumers {
		for _, fw := range c.Frameworks {
			appendUnique("OTHER_LDFLAGS", "-framework \""+fw+"\"")
		}
		for _, lib := range c.Libraries {
			appendUnique("OTHER_LDFLAGS", "-l\""+lib+"\"")
		}
		if c.RequiresARC {
			requiresARC = true
		}
	}
	appendUnique("OTHER_LDFLAGS", "-ObjC")
	if requiresARC && x.SetARCCompatibilityFlag {
		appendUnique("OTHER_LDFLAGS", "-fobjc-arc")
	}
	appendUnique("PODS_ROOT", x.podsRoot())
	appendUnique("HEADER_SEARCH_PATHS", `"${PODS_ROOT}/Headers"`)
	appendUnique("ALWAYS_SEARCH_USER_PATHS", "YES")

	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(" = ")
		b.WriteString(strings.Join(settings[k], " "))
		b.WriteString("\n")
	}
	return b.String()
}

// SaveAs writes the rendered xcconfig to path.
func (x *Xcconfig) SaveAs(path string) error {
	return saveContent(path, x.Generate())
}

func (x *Xcconfig) podsRoot() string {
	if x.PodsRoot != "" {
		return x.PodsRoot
	}
	return "${SRCROOT}/Pods"
}
