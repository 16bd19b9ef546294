package generator

import (
	"fmt"
	"strings"

	"github.com/nightconcept/peridot-go/internal/core/spec"
)

// Acknowledgements renders the license acknowledgement documents from every
// installed specification. Two forms are produced from one shared base path:
// a markdown document for humans and a settings-bundle plist for devices.
type Acknowledgements struct {
	Specs []*spec.Specification
}

// FileExtensions lists the document kinds derived from the base path, in
// generation order.
func (a *Acknowledgements) FileExtensions() []string {
	return []string{".markdown", ".plist"}
}

// GenerateFor renders the document for one extension returned by
// FileExtensions.
func (a *Acknowledgements) GenerateFor(ext string) (string, error) {
	switch ext {
	case ".markdown":
		return a.generateMarkdown(), nil
	case ".plist":
		return a.generatePlist(), nil
	}
	return "", fmt.Errorf("unknown acknowledgements document kind %q", ext)
}

// SaveAll writes every document kind next to the shared base path and
// returns the written paths in generation order.
func (a *Acknowledgements) SaveAll(basePath string) ([]string, error) {
	var paths []string
	for _, ext := range a.FileExtensions() {
		content, err := a.GenerateFor(ext)
		if err != nil {
			return paths, err
		}
		path := basePath + ext
		if err := saveContent(path, content); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

const acknowledgementsHeader = "This application makes use of the following third party libraries:"
const acknowledgementsFooter = "Generated by CocoaPods - http://cocoapods.org"

func (a *Acknowledgements) generateMarkdown() string {
	var b strings.Builder
	b.WriteString("# Acknowledgements\n")
	b.WriteString(acknowledgementsHeader)
	b.WriteString("\n")
	for _, s := range a.Specs {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", s.Name, licenseText(s))
	}
	b.WriteString("\n")
	b.WriteString(acknowledgementsFooter)
	b.WriteString("\n")
	return b.String()
}

func (a *Acknowledgements) generatePlist() string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<plist version=\"1.0\">\n<dict>\n")
	b.WriteString("  <key>PreferenceSpecifiers</key>\n  <array>\n")
	writeEntry := func(title, text string) {
		b.WriteString("    <dict>\n")
		b.WriteString("      <key>Type</key><string>PSGroupSpecifier</string>\n")
		fmt.Fprintf(&b, "      <key>Title</key><string>%s</string>\n", xmlEscape(title))
		fmt.Fprintf(&b, "      <key>FooterText</key><string>%s</string>\n", xmlEscape(text))
		b.WriteString("    </dict>\n")
	}
	writeEntry("Acknowledgements", acknowledgementsHeader)
	for _, s := range a.Specs {
		writeEntry(s.Name, licenseText(s))
	}
	writeEntry("", acknowledgementsFooter)
	b.WriteString("  </array>\n")
	b.WriteString("  <key>Title</key><string>Acknowledgements</string>\n")
	b.WriteString("</dict>\n</plist>\n")
	return b.String()
}

func licenseText(s *spec.Specification) string {
	if s.License != "" {
		return s.License
	}
	return "License unavailable."
}

func xmlEscape(s string) string {
	return strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	).Replace(s)
}
