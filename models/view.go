package models

// ResourceView is an HDX resource view rendering a preview of a resource
type ResourceView struct {
	ID               string `json:"id,omitempty"`
	ResourceID       string `json:"resource_id"`
	Description      string `json:"description"`
	Title            string `json:"title"`
	ViewType         string `json:"view_type"`
	HXLPreviewConfig string `json:"hxl_preview_config"`
}

// QuickChartsConfig is the configuration read by the HXL preview (Quick Charts) renderer
type QuickChartsConfig struct {
	ConfigVersion int    `json:"configVersion"`
	Bites         []Bite `json:"bites"`
}

// Bite is a single chart of a Quick Charts configuration
type Bite interface {
	BiteType() string
}

// Ingredient describes which HXL columns a bite aggregates
type Ingredient struct {
	AggregateColumn   *string `json:"aggregateColumn"`
	ValueColumn       string  `json:"valueColumn"`
	AggregateFunction string  `json:"aggregateFunction"`
	DateColumn        string  `json:"dateColumn,omitempty"`
}

// KeyFigureBite displays a single aggregated number
type KeyFigureBite struct {
	Init            bool       `json:"init"`
	Type            string     `json:"type"`
	FilteredValues  []string   `json:"filteredValues"`
	ErrorMsg        *string    `json:"errorMsg"`
	Ingredient      Ingredient `json:"ingredient"`
	DataTitle       string     `json:"dataTitle"`
	DisplayCategory string     `json:"displayCategory"`
	Unit            *string    `json:"unit"`
	HashCode        int32      `json:"hashCode"`
	Title           string     `json:"title"`
	Value           *float64   `json:"value"`
}

// BiteType implements Bite
func (b KeyFigureBite) BiteType() string { return b.Type }

// ChartBite displays a bar chart or, with a date column, a timeseries
type ChartBite struct {
	Init            bool       `json:"init"`
	Type            string     `json:"type"`
	FilteredValues  []string   `json:"filteredValues"`
	ErrorMsg        *string    `json:"errorMsg"`
	SwapAxis        bool       `json:"swapAxis"`
	ShowGrid        bool       `json:"showGrid"`
	PieChart        bool       `json:"pieChart"`
	Ingredient      Ingredient `json:"ingredient"`
	DataTitle       string     `json:"dataTitle"`
	DisplayCategory string     `json:"displayCategory"`
	HashCode        int32      `json:"hashCode"`
	Title           string     `json:"title"`
	Values          []string   `json:"values"`
	Categories      []string   `json:"categories"`
}

// BiteType implements Bite
func (b ChartBite) BiteType() string { return b.Type }
