package platform

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Supported platform names.
const (
	IOS = "ios"
	OSX = "osx"
)

// Platform identifies a target platform together with its deployment target.
// The deployment target may be nil when a pod does not declare one.
type Platform struct {
	Name             string
	DeploymentTarget *semver.Version
}

// New builds a Platform from a name and an optional deployment target string
// such as "5.0" or "10.8". An empty deploymentTarget leaves the version nil.
func New(name, deploymentTarget string) (Platform, error) {
	p := Platform{Name: name}
	if name != IOS && name != OSX {
		return p, fmt.Errorf("unknown platform %q", name)
	}
	if deploymentTarget == "" {
		return p, nil
	}
	v, err := semver.NewVersion(deploymentTarget)
	if err != nil {
		return p, fmt.Errorf("invalid deployment target %q for platform %s: %w", deploymentTarget, name, err)
	}
	p.DeploymentTarget = v
	return p, nil
}

// MustNew is New for trusted, compile-time-known inputs (tests, defaults).
func MustNew(name, deploymentTarget string) Platform {
	p, err := New(name, deploymentTarget)
	if err != nil {
		panic(err)
	}
	return p
}

var (
	iosDispatchThreshold = semver.MustParse("6.0")
	osxDispatchThreshold = semver.MustParse("10.8")

	iosLegacyArchCeiling = semver.MustParse("4.3")
)

// DispatchObjectThreshold returns the minimum deployment target at which
// libdispatch objects are managed by ARC, so that sources no longer need the
// OS_OBJECT_USE_OBJC=0 compatibility define.
func (p Platform) DispatchObjectThreshold() *semver.Version {
	if p.Name == OSX {
		return osxDispatchThreshold
	}
	return iosDispatchThreshold
}

// RequiresLegacyArchitectures reports whether the deployment target still
// needs the armv6 architecture slice.
func (p Platform) RequiresLegacyArchitectures() bool {
	if p.Name != IOS || p.DeploymentTarget == nil {
		return false
	}
	return p.DeploymentTarget.LessThan(iosLegacyArchCeiling)
}

// RootFrameworkImport returns the import line for the platform's root
// framework, used when generating prefix headers.
func (p Platform) RootFrameworkImport() string {
	if p.Name == OSX {
		return "#import <Cocoa/Cocoa.h>"
	}
	return "#import <UIKit/UIKit.h>"
}

// SDKName returns the Xcode SDK identifier for the platform.
func (p Platform) SDKName() string {
	if p.Name == OSX {
		return "macosx"
	}
	return "iphoneos"
}

// DeploymentTargetString returns the deployment target formatted the way
// build settings expect it ("5.0", "10.8.2"), or "" when unset.
func (p Platform) DeploymentTargetString() string {
	if p.DeploymentTarget == nil {
		return ""
	}
	v := p.DeploymentTarget
	if v.Patch() == 0 {
		return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
	}
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}
