package acled

import (
	"context"
	"strconv"
	"strings"

	"github.com/ONSdigital/dp-acled-hdx-publisher/models"
	"github.com/ONSdigital/dp-acled-hdx-publisher/tabular"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/pkg/errors"
)

//go:generate moq -out mocks_acled.go . Downloader

// Columns of the ACLED country reference table
const (
	ColumnName    = "Name"
	ColumnISO3    = "ACLED country-code"
	ColumnM49     = "ISO Country Number"
	ColumnYear    = "year"
	QueryISOParam = "iso="
)

// Downloader fetches tabular data as rows keyed by header
type Downloader interface {
	GetTabularRows(ctx context.Context, url string) ([]tabular.Row, error)
}

// Locations is the set of location identifiers accepted by the catalog
type Locations map[string]struct{}

// NewLocations builds a Locations set. Identifiers are compared lowercase.
func NewLocations(ids ...string) Locations {
	l := make(Locations, len(ids))
	for _, id := range ids {
		l[strings.ToLower(id)] = struct{}{}
	}
	return l
}

// Contains reports whether id is an accepted location
func (l Locations) Contains(id string) bool {
	_, ok := l[strings.ToLower(id)]
	return ok
}

// GetCountriesData fetches the ACLED country reference table and returns the
// countries the catalog accepts as locations, in table order
func GetCountriesData(ctx context.Context, countriesURL string, downloader Downloader, locations Locations) ([]models.Country, error) {
	rows, err := downloader.GetTabularRows(ctx, countriesURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get country reference table")
	}

	countries := make([]models.Country, 0, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(row[ColumnName])
		iso3 := strings.TrimSpace(row[ColumnISO3])

		if !locations.Contains(iso3) {
			log.Info(ctx, "skipping country that is not a valid location", log.Data{"country": name, "iso3": iso3})
			continue
		}

		m49, err := parseM49(row[ColumnM49])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %q on row %d (%s)", ColumnM49, i+1, name)
		}

		countries = append(countries, models.Country{
			M49:  m49,
			ISO3: iso3,
			Name: name,
		})
	}

	return countries, nil
}

// parseM49 accepts integers and integral decimals, as spreadsheets export either
func parseM49(value string) (int, error) {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != float64(int(f)) {
		return 0, errors.Errorf("%q is not a country number", value)
	}
	return int(f), nil
}
