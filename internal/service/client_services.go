package service

import (
	"github.com/MKhiriev/horizon/internal/config"
	"github.com/MKhiriev/horizon/internal/logger"
	"github.com/MKhiriev/horizon/internal/navigation"
	"github.com/MKhiriev/horizon/internal/provider"
	"github.com/MKhiriev/horizon/internal/store"
	"github.com/MKhiriev/horizon/internal/utils"
	"github.com/MKhiriev/horizon/internal/validators"
	"github.com/MKhiriev/horizon/models"
)

type ClientServices struct {
	SearchService  SearchService
	HistoryService HistoryService
	ProfileService ProfileService
	AppInfoService AppInfoService

	// Validator and Router are shared with the UI so that form checks and
	// route handling stay identical on both sides.
	Validator validators.Validator
	Router    *navigation.Router
}

func NewClientServices(storages *store.ClientStorages, cfg *config.StructuredConfig, build models.AppBuildInfo, log *logger.Logger) (*ClientServices, error) {
	log = log.GetChildLogger("service")
	appInfo, err := NewAppInfoService(cfg.App, build, log)
	if err != nil {
		return nil, err
	}

	validator := validators.NewSearchRequestValidator()
	router := navigation.NewRouter()
	profiles := provider.NewMockProfileProvider(
		utils.NewDelayer(cfg.Search.ProfileLatency),
		utils.NewUUIDGenerator(),
	)

	log.Debug().Str("func", "NewClientServices").Msg("client services created")

	return &ClientServices{
		SearchService: NewSearchService(
			validator,
			storages.HistoryRepository,
			utils.NewDelayer(cfg.Search.SubmitLatency),
			utils.SystemClock{},
		),
		HistoryService: NewHistoryService(storages.HistoryRepository),
		ProfileService: NewProfileService(router, profiles),
		AppInfoService: appInfo,
		Validator:      validator,
		Router:         router,
	}, nil
}
