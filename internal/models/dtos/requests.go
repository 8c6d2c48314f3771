package dtos

import "time"

type ProcessImportReq struct {
	GeoJSONData string          `json:"geojson_data"`
	Campaign    CampaignPayload `json:"campaign"`
}

type CampaignReq struct {
	Name        string    `json:"name"`
	Year        string    `json:"year"`
	ProcessDate time.Time `json:"process_date"`
}

type SpeciesReq struct {
	Name       string  `json:"name"`
	CommonName *string `json:"common_name"`
	Image      []byte  `json:"image"`
}

type StandReq struct {
	Department   string  `json:"department"`
	Province     string  `json:"province"`
	District     string  `json:"district"`
	Locality     string  `json:"locality"`
	AreaHectares string  `json:"area_hectares"`
	Easting      string  `json:"easting"`
	Northing     string  `json:"northing"`
	GeoJSON      *string `json:"geojson"`
}
