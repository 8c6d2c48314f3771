package api

import (
	"bloomwatch/reforesta/internal/common"
	"bloomwatch/reforesta/internal/db"
	"bloomwatch/reforesta/internal/db/repositories"
	"bloomwatch/reforesta/internal/metrics"
	"bloomwatch/reforesta/internal/services"
)

type Repositories struct {
	Catalog *repositories.CatalogRepository
	Import  *repositories.ImportRepository
}

type Services struct {
	Cache    common.CacheInterface
	Import   *services.ImportService
	Campaign *services.CampaignService
	Species  *services.SpeciesService
	Stand    *services.StandService
	Map      *services.MapService
	Ubigeo   *common.UbigeoService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Catalog: repositories.NewCatalogRepository(db.DB),
		Import:  repositories.NewImportRepository(db.DB),
	}

	cacheSvc := common.NewCacheFromEnv()

	svcs := &Services{
		Cache:    cacheSvc,
		Import:   services.NewImportService(repos.Catalog, repos.Import),
		Campaign: services.NewCampaignService(db.PgDB),
		Species:  services.NewSpeciesService(db.PgDB),
		Stand:    services.NewStandService(db.PgDB),
		Map:      services.NewMapService(db.PgDB),
		Ubigeo:   common.NewUbigeoService(cacheSvc),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil
}
