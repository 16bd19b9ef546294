package xcodeproj

import (
	"encoding/json"
	"os"
)

// projectDocument is the serialized shape of a project, written for
// inspection and consumed by tooling that post-processes the install.
type projectDocument struct {
	RootPath string          `json:"rootPath"`
	Targets  []*NativeTarget `json:"targets"`
	Support  *Group          `json:"supportFiles"`
}

// Save writes the project document as indented JSON.
func (p *Project) Save(path string) error {
	doc := projectDocument{
		RootPath: p.RootPath,
		Targets:  p.Targets,
		Support:  p.SupportFilesGroup,
	}
	data, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
