package common

import (
	"fmt"
	"sort"
	"time"

	"bloomwatch/reforesta/internal/constants"
)

// Static place hierarchy for the campaign working area (department of
// Apurímac). The survey tooling ships these as fixed lookup tables; they
// change at most once per campaign season.
var (
	ubigeoProvinces = []string{
		"Abancay", "Andahuaylas", "Antabamba", "Aymaraes",
		"Chincheros", "Cotabambas", "Grau",
	}

	ubigeoDistricts = map[string][]string{
		"Abancay":     {"Abancay", "Circa", "Curahuasi", "Lambrama", "Pichirhua", "Tamburco"},
		"Andahuaylas": {"Andahuaylas", "Pacucha", "Talavera", "San Jerónimo", "Kishuará"},
		"Antabamba":   {"Antabamba", "Huaquirca", "Sabaino"},
		"Aymaraes":    {"Chalhuanca", "Caraybamba", "Cotaruse", "Tapairihua"},
		"Chincheros":  {"Chincheros", "Anco Huallo", "Ocobamba", "Uranmarca"},
		"Cotabambas":  {"Tambobamba", "Coyllurqui", "Haquira", "Mara"},
		"Grau":        {"Chuquibambilla", "Curpahuasi", "Mamara", "Progreso"},
	}

	ubigeoLocalities = map[string][]string{
		"Abancay":        {"Ccorhuani", "Karkatera", "Llañucancha", "Quisapata"},
		"Circa":          {"Ccochua", "Huancarpuquio"},
		"Curahuasi":      {"Ccochirhua", "Pisonaypata", "Trancapata"},
		"Lambrama":       {"Atancama", "Caype", "Marjuni"},
		"Pichirhua":      {"Auquibamba", "Ocrabamba"},
		"Tamburco":       {"Ccanabamba", "Maucacalle"},
		"Andahuaylas":    {"Cupisa", "Huinchos"},
		"Pacucha":        {"Argama", "Santa Rosa"},
		"Talavera":       {"Luispata", "Sacclaya"},
		"San Jerónimo":   {"Champaccocha", "Poltocsa"},
		"Kishuará":       {"Cavira", "Huampica"},
		"Antabamba":      {"Ccaccahuasi", "Totora"},
		"Huaquirca":      {"Matara", "Vito"},
		"Sabaino":        {"Huancapampa"},
		"Chalhuanca":     {"Mutca", "Pampamarca"},
		"Caraybamba":     {"Cconcacha"},
		"Cotaruse":       {"Iscahuaca", "Pisquicocha"},
		"Tapairihua":     {"Socco"},
		"Chincheros":     {"Callebamba", "Totorabamba"},
		"Anco Huallo":    {"Muschka", "Totoral"},
		"Ocobamba":       {"Ahuayro"},
		"Uranmarca":      {"Nueva Esperanza"},
		"Tambobamba":     {"Asacasi", "Punapampa"},
		"Coyllurqui":     {"Huayllati", "Ñahuinlla"},
		"Haquira":        {"Patahuasi"},
		"Mara":           {"Ccapacmarca"},
		"Chuquibambilla": {"Ayrihuanca", "Runcuhuasi"},
		"Curpahuasi":     {"Tambo"},
		"Mamara":         {"Palcayno"},
		"Progreso":       {"Record"},
	}
)

// UbigeoService serves the sorted place hierarchy through the shared cache.
type UbigeoService struct {
	cache CacheInterface
}

func NewUbigeoService(cache CacheInterface) *UbigeoService {
	return &UbigeoService{cache: cache}
}

func (svc *UbigeoService) Provinces() []string {
	val, _ := svc.cache.GetOrSet(string(constants.CachePrefixProvinces), time.Hour, func() (any, error) {
		return sortedCopy(ubigeoProvinces), nil
	})
	return toStringSlice(val)
}

func (svc *UbigeoService) Districts(province string) ([]string, error) {
	districts, ok := ubigeoDistricts[province]
	if !ok {
		return nil, fmt.Errorf("unknown province %q", province)
	}

	key := string(constants.CachePrefixDistricts) + province
	val, _ := svc.cache.GetOrSet(key, time.Hour, func() (any, error) {
		return sortedCopy(districts), nil
	})
	return toStringSlice(val), nil
}

func (svc *UbigeoService) Localities(district string) ([]string, error) {
	localities, ok := ubigeoLocalities[district]
	if !ok {
		return nil, fmt.Errorf("unknown district %q", district)
	}

	key := string(constants.CachePrefixLocalities) + district
	val, _ := svc.cache.GetOrSet(key, time.Hour, func() (any, error) {
		return sortedCopy(localities), nil
	})
	return toStringSlice(val), nil
}

func sortedCopy(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}

// toStringSlice normalizes cached values: the Redis backend round-trips
// through JSON, so a []string may come back as []interface{}.
func toStringSlice(val any) []string {
	switch v := val.(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
