package models

// Dataset is an HDX dataset (CKAN package) describing the conflict data of one country
type Dataset struct {
	ID                  string     `json:"id,omitempty"`
	Name                string     `json:"name"                  validate:"required,max=100"`
	Title               string     `json:"title"                 validate:"required"`
	OwnerOrg            string     `json:"owner_org"             validate:"required,uuid"`
	Maintainer          string     `json:"maintainer"            validate:"required"`
	DataUpdateFrequency string     `json:"data_update_frequency" validate:"required"`
	DatasetDate         string     `json:"dataset_date"          validate:"required"`
	Groups              []Group    `json:"groups"                validate:"len=1,dive"`
	Tags                []Tag      `json:"tags"                  validate:"min=1,dive"`
	Resources           []Resource `json:"resources,omitempty"   validate:"dive"`
}

// Group is an HDX location group, named by lowercase ISO3 code
type Group struct {
	Name string `json:"name" validate:"required"`
}

// Tag is a free text CKAN tag
type Tag struct {
	Name string `json:"name" validate:"required"`
}

// Resource is a single downloadable file attached to a dataset
type Resource struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	Format      string `json:"format"      validate:"required"`
	URL         string `json:"url"         validate:"required,url"`
}

// Showcase links a dataset to an external visualisation
type Showcase struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"      validate:"required,max=100"`
	Title    string `json:"title"     validate:"required"`
	Notes    string `json:"notes"`
	URL      string `json:"url"       validate:"required,url"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
	Tags     []Tag  `json:"tags"      validate:"dive"`
}

// NewTags converts tag names into CKAN tags, preserving order
func NewTags(names []string) []Tag {
	tags := make([]Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, Tag{Name: name})
	}
	return tags
}

// FirstResource returns the first resource of the dataset, if any
func (d *Dataset) FirstResource() (Resource, bool) {
	if d == nil || len(d.Resources) == 0 {
		return Resource{}, false
	}
	return d.Resources[0], true
}
