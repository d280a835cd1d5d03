package models

// CountryList contains the countries that can be published
type CountryList struct {
	Items      []CountryItem `json:"items"`
	Count      int           `json:"count"`
	TotalCount int           `json:"total_count"`
}

// CountryItem is a country with links to its preview and publish endpoints
type CountryItem struct {
	Country
	Links CountryLinks `json:"links"`
}

// CountryLinks contains links for a country resource
type CountryLinks struct {
	Self    *Link `json:"self"`
	Publish *Link `json:"publish"`
}

// Link is a reference to another resource
type Link struct {
	HRef string `json:"href"`
	ID   string `json:"id,omitempty"`
}

// PublishReport summarises a publication run. Error is set when the run
// stopped early.
type PublishReport struct {
	Items     []PublishedCountry `json:"items"`
	Count     int                `json:"count"`
	Published int                `json:"published"`
	Skipped   int                `json:"skipped"`
	Error     string             `json:"error,omitempty"`
}

// PublishedCountry is the outcome of publishing one country. Links is nil when
// the country had no events.
type PublishedCountry struct {
	Country
	Skipped bool                   `json:"skipped"`
	Links   *PublishedCountryLinks `json:"links,omitempty"`
}

// PublishedCountryLinks contains links to the catalog records of a country
type PublishedCountryLinks struct {
	Dataset  *Link `json:"dataset"`
	Resource *Link `json:"resource"`
	Showcase *Link `json:"showcase"`
	View     *Link `json:"view"`
}
