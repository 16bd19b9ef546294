package installer

import (
	"strings"

	"github.com/nightconcept/peridot-go/internal/core/platform"
	"github.com/nightconcept/peridot-go/internal/core/spec"
)

// FlagsFor computes the compiler flags for every source file of a
// specification consumer. It is a pure, order-preserving function: declared
// flags come first, then -fobjc-arc when the consumer requires ARC, then the
// libdispatch object-lifetime compatibility define when the declared
// deployment target is absent or below the platform threshold.
func FlagsFor(c *spec.Consumer) []string {
	flags := append([]string(nil), c.CompilerFlags...)
	if !c.RequiresARC {
		return flags
	}
	flags = append(flags, "-fobjc-arc")

	plat, err := platform.New(c.PlatformName, c.DeploymentTarget)
	if err != nil {
		// An unparseable declaration behaves like an absent one.
		plat = platform.Platform{Name: c.PlatformName}
	}
	if belowDispatchThreshold(plat) {
		flags = append(flags, "-DOS_OBJECT_USE_OBJC=0")
	}
	return flags
}

// JoinFlags renders a flag list as the single space-separated string
// attached to a file reference. The internal representation stays a list
// until this point.
func JoinFlags(flags []string) string {
	return strings.Join(flags, " ")
}

func belowDispatchThreshold(p platform.Platform) bool {
	if p.DeploymentTarget == nil {
		return true
	}
	threshold := p.DispatchObjectThreshold()
	if threshold == nil {
		return true
	}
	return p.DeploymentTarget.LessThan(threshold)
}
