package acled

import (
	"encoding/json"

	"github.com/ONSdigital/dp-acled-hdx-publisher/models"
	"github.com/pkg/errors"
)

// Resource view constants
const (
	ViewTitle          = "Quick Charts"
	ViewType           = "hdx_hxl_preview"
	QuickChartsVersion = 2

	hxlFatalities = "#affected+killed"
	hxlAdmin1     = "#adm1+name"
	hxlDate       = "#date+occurred"
)

var (
	// ErrNoResource is returned when a view is requested for a dataset without resources
	ErrNoResource = errors.New("dataset has no resource")
	// ErrNoResourceID is returned when the resource has not been persisted yet
	ErrNoResourceID = errors.New("resource has no id")
)

// GenerateResourceView builds the Quick Charts view of the first resource of
// dataset. The resource must already have been given an id by the catalog.
func GenerateResourceView(dataset *models.Dataset) (*models.ResourceView, error) {
	resource, ok := dataset.FirstResource()
	if !ok {
		return nil, ErrNoResource
	}
	if resource.ID == "" {
		return nil, errors.Wrapf(ErrNoResourceID, "resource %q", resource.Name)
	}

	config, err := json.Marshal(QuickCharts())
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal quick charts configuration")
	}

	return &models.ResourceView{
		ResourceID:       resource.ID,
		Description:      "",
		Title:            ViewTitle,
		ViewType:         ViewType,
		HXLPreviewConfig: string(config),
	}, nil
}

// QuickCharts returns the fatalities charts: a key figure, a bar chart by
// admin1 and a timeseries
func QuickCharts() models.QuickChartsConfig {
	sum := "sum"
	admin1 := hxlAdmin1

	return models.QuickChartsConfig{
		ConfigVersion: QuickChartsVersion,
		Bites: []models.Bite{
			models.KeyFigureBite{
				Init:           true,
				Type:           "key figure",
				FilteredValues: []string{},
				Ingredient: models.Ingredient{
					ValueColumn:       hxlFatalities,
					AggregateFunction: sum,
				},
				DataTitle:       hxlFatalities,
				DisplayCategory: "Key Figures",
				HashCode:        -1955043658,
				Title:           "Sum of fatalities",
			},
			models.ChartBite{
				Init:           true,
				Type:           "chart",
				FilteredValues: []string{},
				SwapAxis:       true,
				ShowGrid:       true,
				Ingredient: models.Ingredient{
					AggregateColumn:   &admin1,
					ValueColumn:       hxlFatalities,
					AggregateFunction: sum,
				},
				DataTitle:       hxlFatalities,
				DisplayCategory: "Charts",
				HashCode:        738289179,
				Title:           "Sum of fatalities grouped by admin1",
			},
			models.ChartBite{
				Init:           true,
				Type:           "timeseries",
				FilteredValues: []string{},
				SwapAxis:       true,
				ShowGrid:       true,
				Ingredient: models.Ingredient{
					ValueColumn:       hxlFatalities,
					AggregateFunction: sum,
					DateColumn:        hxlDate,
				},
				DataTitle:       hxlFatalities,
				DisplayCategory: "Timeseries",
				HashCode:        1013518453,
				Title:           "Sum of fatalities",
			},
		},
	}
}
