package mapper

import (
	"fmt"
	"strings"

	"github.com/ONSdigital/dp-acled-hdx-publisher/models"
	"github.com/ONSdigital/dp-acled-hdx-publisher/publisher"
)

// CountryList maps resolved countries to the country list response
func CountryList(countries []models.Country) models.CountryList {
	items := make([]models.CountryItem, 0, len(countries))
	for _, c := range countries {
		iso3 := strings.ToLower(c.ISO3)
		items = append(items, models.CountryItem{
			Country: c,
			Links: models.CountryLinks{
				Self:    &models.Link{HRef: fmt.Sprintf("/countries/%s", iso3), ID: iso3},
				Publish: &models.Link{HRef: fmt.Sprintf("/countries/%s/publish", iso3)},
			},
		})
	}

	return models.CountryList{
		Items:      items,
		Count:      len(items),
		TotalCount: len(items),
	}
}

// PublishReport maps a publication run to its response. hdxURL is the catalog
// base URL the record links point at.
func PublishReport(hdxURL string, report *publisher.Report) models.PublishReport {
	resp := models.PublishReport{Items: []models.PublishedCountry{}}
	if report == nil {
		return resp
	}

	for i := range report.Outcomes {
		resp.Items = append(resp.Items, PublishedCountry(hdxURL, &report.Outcomes[i]))
	}
	resp.Count = len(resp.Items)
	resp.Published = report.Published()
	resp.Skipped = resp.Count - resp.Published

	return resp
}

// PublishedCountry maps the outcome of one country
func PublishedCountry(hdxURL string, outcome *publisher.Outcome) models.PublishedCountry {
	pc := models.PublishedCountry{
		Country: outcome.Country,
		Skipped: outcome.Skipped,
	}
	if outcome.Skipped {
		return pc
	}

	base := strings.TrimRight(hdxURL, "/")
	datasetURL := fmt.Sprintf("%s/dataset/%s", base, outcome.Dataset)
	pc.Links = &models.PublishedCountryLinks{
		Dataset:  &models.Link{HRef: datasetURL, ID: outcome.DatasetID},
		Resource: &models.Link{HRef: fmt.Sprintf("%s/resource/%s", datasetURL, outcome.ResourceID), ID: outcome.ResourceID},
		Showcase: &models.Link{HRef: fmt.Sprintf("%s/showcase/%s", base, outcome.ShowcaseID), ID: outcome.ShowcaseID},
		View:     &models.Link{HRef: fmt.Sprintf("%s/resource/%s/view/%s", datasetURL, outcome.ResourceID, outcome.ViewID), ID: outcome.ViewID},
	}

	return pc
}
