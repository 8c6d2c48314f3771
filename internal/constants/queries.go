package constants

const (
	FindSpeciesByNormalizedName = `
	SELECT id, name, common_name, image FROM plant_species WHERE LOWER(TRIM(name)) = $1
	`

	FindStandByCoordinates = `
	SELECT id, department, province, district, locality, area_hectares,
	       easting, northing, geometry
	FROM forest_stands WHERE easting = $1 AND northing = $2
	`

	InsertCampaign = `
	INSERT INTO campaigns (name, year, process_date)
	VALUES ($1, $2, $3)
	RETURNING id
	`

	InsertSpecies = `
	INSERT INTO plant_species (name, image)
	VALUES ($1, $2)
	RETURNING id
	`

	InsertStand = `
	INSERT INTO forest_stands (
		department, province, district, locality,
		area_hectares, easting, northing, geometry
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id
	`

	InsertCampaignDetail = `
	INSERT INTO campaign_details (
		campaign_id, species_id, stand_id,
		activity_type, activity_state, activity_date,
		element_count, stand_value, agroforestry
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id
	`
)
