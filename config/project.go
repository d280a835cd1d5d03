package config

import (
	_ "embed"

	"github.com/ONSdigital/dp-acled-hdx-publisher/models"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed project_configuration.yml
var projectConfiguration []byte

// Project holds the static catalog metadata that every generated dataset shares
type Project struct {
	Dataset  DatasetDefaults  `yaml:"dataset"`
	Resource ResourceDefaults `yaml:"resource"`
	Showcase ShowcaseDefaults `yaml:"showcase"`
	HXLProxy models.HXLProxy  `yaml:"hxlproxy"`
}

// DatasetDefaults are the fixed dataset fields
type DatasetDefaults struct {
	UpdateFrequency string   `yaml:"update_frequency"`
	Tags            []string `yaml:"tags"`
}

// ResourceDefaults are the fixed resource fields
type ResourceDefaults struct {
	Description string `yaml:"description"`
	Format      string `yaml:"format"`
}

// ShowcaseDefaults are the fixed showcase fields. DashboardURL takes the M49 code.
type ShowcaseDefaults struct {
	DashboardURL string `yaml:"dashboard_url"`
	ImageURL     string `yaml:"image_url"`
}

// LoadProject parses the embedded project configuration
func LoadProject() (*Project, error) {
	return ParseProject(projectConfiguration)
}

// ParseProject parses and validates a YAML project configuration
func ParseProject(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "failed to parse project configuration")
	}

	if err := p.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid project configuration")
	}

	return &p, nil
}

func (p *Project) validate() error {
	if len(p.Dataset.Tags) == 0 {
		return errors.New("dataset.tags must not be empty")
	}
	if p.Dataset.UpdateFrequency == "" {
		return errors.New("dataset.update_frequency is required")
	}
	if p.Resource.Format == "" {
		return errors.New("resource.format is required")
	}
	if p.Showcase.DashboardURL == "" {
		return errors.New("showcase.dashboard_url is required")
	}
	if p.HXLProxy.HeaderRow < 1 {
		return errors.New("hxlproxy.header_row must be at least 1")
	}

	seen := make(map[int]bool, len(p.HXLProxy.Taggers))
	for i, t := range p.HXLProxy.Taggers {
		if t.Header == "" || t.Tag == "" {
			return errors.Errorf("hxlproxy.taggers[%d] needs a header and a tag", i)
		}
		if t.Column < 1 || t.Column > 99 {
			return errors.Errorf("hxlproxy.taggers[%d] column %d out of range", i, t.Column)
		}
		if seen[t.Column] {
			return errors.Errorf("hxlproxy.taggers[%d] duplicates column %d", i, t.Column)
		}
		seen[t.Column] = true
	}

	return nil
}
