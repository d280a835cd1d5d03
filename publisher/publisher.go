package publisher

import (
	"context"
	"strings"

	"github.com/ONSdigital/dp-acled-hdx-publisher/acled"
	"github.com/ONSdigital/dp-acled-hdx-publisher/models"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

//go:generate moq -out mocks_publisher.go . Catalog Generator

// ErrCountryNotFound is returned when a country is not in the reference table
// or is not a valid catalog location
var ErrCountryNotFound = errors.New("country not found")

// Catalog stores datasets, showcases and resource views
type Catalog interface {
	GetValidLocations(ctx context.Context) (acled.Locations, error)
	CreateOrUpdateDataset(ctx context.Context, dataset *models.Dataset) (*models.Dataset, error)
	CreateShowcase(ctx context.Context, showcase *models.Showcase, datasetName string) (*models.Showcase, error)
	CreateResourceView(ctx context.Context, view *models.ResourceView) (*models.ResourceView, error)
}

// Generator builds the dataset and showcase of a country
type Generator interface {
	GenerateDatasetAndShowcase(ctx context.Context, baseURL string, country models.Country) (*models.Dataset, *models.Showcase, error)
}

// Publisher publishes the conflict data of every country to the catalog
type Publisher struct {
	catalog      Catalog
	generator    Generator
	downloader   acled.Downloader
	countriesURL string
	eventsURL    string
	concurrency  int
}

// New creates a Publisher. A concurrency below one publishes sequentially.
func New(catalog Catalog, generator Generator, downloader acled.Downloader, countriesURL, eventsURL string, concurrency int) *Publisher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Publisher{
		catalog:      catalog,
		generator:    generator,
		downloader:   downloader,
		countriesURL: countriesURL,
		eventsURL:    eventsURL,
		concurrency:  concurrency,
	}
}

// Outcome is the result of publishing one country
type Outcome struct {
	Country    models.Country `json:"country"`
	Skipped    bool           `json:"skipped"`
	Dataset    string         `json:"dataset,omitempty"`
	DatasetID  string         `json:"dataset_id,omitempty"`
	ResourceID string         `json:"resource_id,omitempty"`
	ShowcaseID string         `json:"showcase_id,omitempty"`
	ViewID     string         `json:"view_id,omitempty"`
}

// Report lists the outcome of every country of a run, in reference table order
type Report struct {
	Outcomes []Outcome `json:"outcomes"`
}

// Published counts the countries whose dataset was published
func (r *Report) Published() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Skipped {
			n++
		}
	}
	return n
}

// Preview is the generated metadata of a country before publication
type Preview struct {
	Country  models.Country   `json:"country"`
	Dataset  *models.Dataset  `json:"dataset"`
	Showcase *models.Showcase `json:"showcase"`
}

// Countries returns the countries that can be published
func (p *Publisher) Countries(ctx context.Context) ([]models.Country, error) {
	locations, err := p.catalog.GetValidLocations(ctx)
	if err != nil {
		return nil, err
	}
	return acled.GetCountriesData(ctx, p.countriesURL, p.downloader, locations)
}

// Country returns the country with the given ISO3 code
func (p *Publisher) Country(ctx context.Context, iso3 string) (models.Country, error) {
	countries, err := p.Countries(ctx)
	if err != nil {
		return models.Country{}, err
	}
	for _, c := range countries {
		if strings.EqualFold(c.ISO3, iso3) {
			return c, nil
		}
	}
	return models.Country{}, errors.Wrap(ErrCountryNotFound, iso3)
}

// Preview generates the dataset and showcase of a country without publishing
// them. Both are nil when the country has no events.
func (p *Publisher) Preview(ctx context.Context, iso3 string) (*Preview, error) {
	country, err := p.Country(ctx, iso3)
	if err != nil {
		return nil, err
	}

	dataset, showcase, err := p.generator.GenerateDatasetAndShowcase(ctx, p.eventsURL, country)
	if err != nil {
		return nil, err
	}

	return &Preview{Country: country, Dataset: dataset, Showcase: showcase}, nil
}

// PublishCountry publishes the country with the given ISO3 code
func (p *Publisher) PublishCountry(ctx context.Context, iso3 string) (*Outcome, error) {
	country, err := p.Country(ctx, iso3)
	if err != nil {
		return nil, err
	}
	return p.publish(ctx, country)
}

// Run publishes every country. The run stops at the first failure.
func (p *Publisher) Run(ctx context.Context) (*Report, error) {
	countries, err := p.Countries(ctx)
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "publishing countries", log.Data{"countries": len(countries), "concurrency": p.concurrency})

	outcomes := make([]*Outcome, len(countries))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.concurrency)
	for i, country := range countries {
		i, country := i, country
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			outcome, err := p.publish(egCtx, country)
			if err != nil {
				return err
			}
			outcomes[i] = outcome
			return nil
		})
	}

	report := &Report{Outcomes: make([]Outcome, 0, len(countries))}
	err = eg.Wait()
	for _, o := range outcomes {
		if o != nil {
			report.Outcomes = append(report.Outcomes, *o)
		}
	}
	if err != nil {
		return report, err
	}

	log.Info(ctx, "published countries", log.Data{"published": report.Published(), "skipped": len(report.Outcomes) - report.Published()})
	return report, nil
}

func (p *Publisher) publish(ctx context.Context, country models.Country) (*Outcome, error) {
	logData := log.Data{"country": country.Name, "iso3": country.ISO3}

	dataset, showcase, err := p.generator.GenerateDatasetAndShowcase(ctx, p.eventsURL, country)
	if err != nil {
		return nil, err
	}
	if dataset == nil {
		log.Info(ctx, "skipping country without events", logData)
		return &Outcome{Country: country, Skipped: true}, nil
	}

	persisted, err := p.catalog.CreateOrUpdateDataset(ctx, dataset)
	if err != nil {
		return nil, err
	}

	savedShowcase, err := p.catalog.CreateShowcase(ctx, showcase, persisted.Name)
	if err != nil {
		return nil, err
	}

	view, err := acled.GenerateResourceView(persisted)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to generate view for dataset %s", persisted.Name)
	}

	savedView, err := p.catalog.CreateResourceView(ctx, view)
	if err != nil {
		return nil, err
	}

	logData["dataset"] = persisted.Name
	log.Info(ctx, "published country", logData)

	return &Outcome{
		Country:    country,
		Dataset:    persisted.Name,
		DatasetID:  persisted.ID,
		ResourceID: view.ResourceID,
		ShowcaseID: savedShowcase.ID,
		ViewID:     savedView.ID,
	}, nil
}
