package generator

import "fmt"

// DummySource renders the placeholder compilation unit that guarantees a
// target links even when its pods contribute no compiled code of their own
// (for example a library made only of category extensions).
type DummySource struct {
	TargetName string
}

func (d *DummySource) Generate() string {
	return fmt.Sprintf("@interface PodsDummy_%s : NSObject\n@end\n@implementation PodsDummy_%s\n@end\n",
		sanitizeIdentifier(d.TargetName), sanitizeIdentifier(d.TargetName))
}

func (d *DummySource) SaveAs(path string) error {
	return saveContent(path, d.Generate())
}

func sanitizeIdentifier(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
