package models

// Country is a country from the ACLED reference table that HDX accepts as a location
type Country struct {
	M49  int    `json:"m49"`
	ISO3 string `json:"iso3"`
	Name string `json:"countryname"`
}
