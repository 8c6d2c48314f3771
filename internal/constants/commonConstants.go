package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixProvinces  CachePrefix = "UBIGEO_PROVINCES"
	CachePrefixDistricts  CachePrefix = "UBIGEO_DISTRICTS_"
	CachePrefixLocalities CachePrefix = "UBIGEO_LOCALITIES_"
	CachePrefixMapData    CachePrefix = "MAP_CAMPAIGN_"
	CachePrefixPlaceStats CachePrefix = "MAP_STATS_"
)

// Activity classification stored on campaign details. Values are kept in
// Spanish because they come straight from (and go back out to) the field
// survey tooling.
const (
	ActivityTypeReforestation = "Reforestación"

	ActivityStatePlanting   = "Plantación"
	ActivityStatePitDigging = "Hoyada"
)

// Survey export attribute names. Field-survey exports use these exact,
// case-sensitive property keys.
const (
	FieldSpecies      = "Especie"
	FieldDepartment   = "Departam"
	FieldProvince     = "Provincia"
	FieldDistrict     = "Distrito"
	FieldLocality     = "Localidad"
	FieldEasting      = "Este_X"
	FieldNorthing     = "Norte_Y"
	FieldAreaHectares = "Área_ha"
	FieldPlantCount   = "N__Plant"
	FieldPitCount     = "N__Hoyos"
	FieldStandValue   = "Macizo_f"
	FieldAgroforestry = "Agroforest"
	FieldPlantingDate = "F_Plantac"
	FieldPitDate      = "F_Hoyacion"
)

// Page sizes for the admin listing screens.
const (
	CampaignsPerPage = 10
	SpeciesPerPage   = 25
	StandsPerPage    = 25
)
