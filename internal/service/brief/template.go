package brief

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed template/sections.yaml
var templateFiles embed.FS

// TemplateSection is one entry of the fixed section template.
type TemplateSection struct {
	Number int    `yaml:"number"`
	Name   string `yaml:"name"`
}

type sectionTemplate struct {
	Sections []TemplateSection `yaml:"sections"`
}

// LoadSectionTemplate parses the embedded section template.
func LoadSectionTemplate() ([]TemplateSection, error) {
	data, err := templateFiles.ReadFile("template/sections.yaml")
	if err != nil {
		return nil, fmt.Errorf("read section template: %w", err)
	}

	var tmpl sectionTemplate
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parse section template: %w", err)
	}
	if len(tmpl.Sections) == 0 {
		return nil, fmt.Errorf("section template is empty")
	}
	return tmpl.Sections, nil
}
