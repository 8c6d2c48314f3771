package constants

const (
	MsgEmptyFeatureCollection = "El archivo no contiene datos válidos"
	MsgElementCountMissing    = "La cantidad de plantas u hoyos es requerida"
	MsgBundleInvalid          = "Datos no válidos"
	MsgBundleSaved            = "Se guardó toda la información correctamente"
	MsgCampaignNotFound       = "Campaña no encontrada"
	MsgSpeciesNotFound        = "Especie no encontrada"
	MsgStandNotFound          = "Macizo forestal no encontrado"
)
