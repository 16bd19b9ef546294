package generator

import (
	"fmt"
	"strings"
)

// CopyResourcesScript renders the shell script that stages pod resources
// into the built product during the integrating project's build.
type CopyResourcesScript struct {
	// Resources are sandbox-relative paths, flattened across all file
	// accessors; the optional bridge-support path is appended by the caller
	// when bridge metadata was generated.
	Resources []string
}

const resourcesScriptPrologue = `#!/bin/sh
set -e

install_resource()
{
  case $1 in
    *.storyboard)
      ibtool --errors --warnings --notices --output-format human-readable-text --compile "${CONFIGURATION_BUILD_DIR}/${UNLOCALIZED_RESOURCES_FOLDER_PATH}/$(basename $1 .storyboard).storyboardc" "${PODS_ROOT}/$1" --sdk "${SDKROOT}"
      ;;
    *.xib)
      ibtool --errors --warnings --notices --output-format human-readable-text --compile "${CONFIGURATION_BUILD_DIR}/${UNLOCALIZED_RESOURCES_FOLDER_PATH}/$(basename $1 .xib).nib" "${PODS_ROOT}/$1" --sdk "${SDKROOT}"
      ;;
    *)
      cp -R "${PODS_ROOT}/$1" "${CONFIGURATION_BUILD_DIR}/${UNLOCALIZED_RESOURCES_FOLDER_PATH}"
      ;;
  esac
}
`

func (s *CopyResourcesScript) Generate() string {
	var b strings.Builder
	b.WriteString(resourcesScriptPrologue)
	for _, res := range s.Resources {
		fmt.Fprintf(&b, "install_resource '%s'\n", res)
	}
	return b.String()
}

func (s *CopyResourcesScript) SaveAs(path string) error {
	return saveContent(path, s.Generate())
}
