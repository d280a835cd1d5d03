package acled

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/ONSdigital/dp-acled-hdx-publisher/models"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/pkg/errors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Settings holds the catalog metadata shared by every generated dataset
type Settings struct {
	OwnerOrg            string
	Maintainer          string
	UpdateFrequency     string
	Tags                []string
	ResourceDescription string
	ResourceFormat      string
	DashboardURL        string
	ImageURL            string
	Proxy               models.HXLProxy
}

// Generator builds datasets and showcases for countries
type Generator struct {
	settings   Settings
	downloader Downloader
}

// NewGenerator creates a Generator fetching events with downloader
func NewGenerator(settings Settings, downloader Downloader) *Generator {
	return &Generator{
		settings:   settings,
		downloader: downloader,
	}
}

// GenerateDatasetAndShowcase queries the events of country and builds its
// dataset and showcase. Both are nil when the country has no events.
func (g *Generator) GenerateDatasetAndShowcase(ctx context.Context, baseURL string, country models.Country) (*models.Dataset, *models.Showcase, error) {
	eventsURL := EventsURL(baseURL, country)
	logData := log.Data{"country": country.Name, "url": eventsURL}

	rows, err := g.downloader.GetTabularRows(ctx, eventsURL)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to get events for %s", country.Name)
	}
	if len(rows) == 0 {
		log.Info(ctx, "no events for country", logData)
		return nil, nil, nil
	}

	years := make([]string, 0, len(rows))
	for _, row := range rows {
		years = append(years, row[ColumnYear])
	}
	datasetDate, err := DatasetDate(years)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to get date range for %s", country.Name)
	}

	tags := models.NewTags(g.settings.Tags)
	name := DatasetName(country.Name)

	dataset := &models.Dataset{
		Name:                name,
		Title:               fmt.Sprintf("%s - Conflict Data", country.Name),
		OwnerOrg:            g.settings.OwnerOrg,
		Maintainer:          g.settings.Maintainer,
		DataUpdateFrequency: g.settings.UpdateFrequency,
		DatasetDate:         datasetDate,
		Groups:              []models.Group{{Name: strings.ToLower(country.ISO3)}},
		Tags:                tags,
		Resources: []models.Resource{
			{
				Name:        fmt.Sprintf("Conflict Data for %s", country.Name),
				Description: g.settings.ResourceDescription,
				Format:      g.settings.ResourceFormat,
				URL:         ResourceURL(g.settings.Proxy, eventsURL),
			},
		},
	}

	showcase := &models.Showcase{
		Name:     name + "-showcase",
		Title:    fmt.Sprintf("Dashboard for %s", country.Name),
		Notes:    fmt.Sprintf("Conflict Data Dashboard for %s", country.Name),
		URL:      fmt.Sprintf(g.settings.DashboardURL, country.M49),
		ImageURL: g.settings.ImageURL,
		Tags:     models.NewTags(g.settings.Tags),
	}

	logData["dataset"] = dataset.Name
	logData["dataset_date"] = datasetDate
	log.Info(ctx, "generated dataset and showcase", logData)

	return dataset, showcase, nil
}

// EventsURL is the ACLED query for the events of country
func EventsURL(baseURL string, country models.Country) string {
	return baseURL + QueryISOParam + strconv.Itoa(country.M49)
}

// DatasetName is the catalog name of the dataset of the named country
func DatasetName(countryName string) string {
	return "acled-data-for-" + slug(countryName)
}

// DatasetDate returns the range from January 1st of the earliest year to
// December 31st of the latest year
func DatasetDate(years []string) (string, error) {
	if len(years) == 0 {
		return "", errors.New("no years to build a date range from")
	}

	var first, last int
	for i, value := range years {
		year, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return "", errors.Errorf("invalid year %q", value)
		}
		if i == 0 || year < first {
			first = year
		}
		if i == 0 || year > last {
			last = year
		}
	}

	return fmt.Sprintf("01/01/%04d-12/31/%04d", first, last), nil
}

// ResourceURL routes sourceURL through the HXL proxy, adding the tagging
// parameters in tagger order
func ResourceURL(proxy models.HXLProxy, sourceURL string) string {
	var b strings.Builder

	b.WriteString(proxy.URL)
	if strings.Contains(proxy.URL, "?") {
		b.WriteString("&")
	} else {
		b.WriteString("?")
	}
	b.WriteString("url=")
	b.WriteString(url.QueryEscape(sourceURL))

	if proxy.Name != "" {
		b.WriteString("&name=")
		b.WriteString(url.QueryEscape(proxy.Name))
	}
	if proxy.MatchAll {
		b.WriteString("&tagger-match-all=on")
	}
	for _, t := range proxy.Taggers {
		fmt.Fprintf(&b, "&tagger-%02d-header=%s&tagger-%02d-tag=%s",
			t.Column, url.QueryEscape(t.Header), t.Column, url.QueryEscape(t.Tag))
	}
	fmt.Fprintf(&b, "&header-row=%d", proxy.HeaderRow)

	return b.String()
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// slug lowercases s, drops accents and joins the remaining words with hyphens
func slug(s string) string {
	plain, _, err := transform.String(stripMarks, s)
	if err != nil {
		plain = s
	}

	words := strings.FieldsFunc(strings.ToLower(plain), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(words, "-")
}
