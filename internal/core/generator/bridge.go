package generator

import (
	"fmt"
	"path/filepath"
	"strings"
)

// BridgeMetadata renders a bridge-support descriptor from the headers of a
// target, enabling runtime-interpreted environments to introspect the
// compiled interfaces.
type BridgeMetadata struct {
	// Headers are project-relative header paths in target order.
	Headers []string
}

func (m *BridgeMetadata) Generate() string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<signatures version=\"1.0\">\n")
	for _, header := range m.Headers {
		name := strings.TrimSuffix(filepath.Base(header), filepath.Ext(header))
		fmt.Fprintf(&b, "  <depends_on path=\"%s\" name=\"%s\"/>\n", header, name)
	}
	b.WriteString("</signatures>\n")
	return b.String()
}

func (m *BridgeMetadata) SaveAs(path string) error {
	return saveContent(path, m.Generate())
}
