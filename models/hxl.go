package models

// Tagger assigns an HXL hashtag to a raw CSV column through the HXL proxy
type Tagger struct {
	Column int    `yaml:"column" json:"column"`
	Header string `yaml:"header" json:"header"`
	Tag    string `yaml:"tag"    json:"tag"`
}

// HXLProxy describes how resource URLs are routed through the HXL proxy
type HXLProxy struct {
	URL       string   `yaml:"-"          json:"url"`
	Name      string   `yaml:"name"       json:"name"`
	MatchAll  bool     `yaml:"match_all"  json:"match_all"`
	HeaderRow int      `yaml:"header_row" json:"header_row"`
	Taggers   []Tagger `yaml:"taggers"    json:"taggers"`
}
