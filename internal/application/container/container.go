// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/StillwaterStudio/stillwater-go/internal/application/services"
	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/caching/stores"
	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/media"
	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/observability/logging"
	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/observability/performance"
	persistence "github.com/StillwaterStudio/stillwater-go/internal/infrastructure/persistence/content"
	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/persistence/database"
	"github.com/StillwaterStudio/stillwater-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	PageService  *services.PageService
	MediaService *services.MediaService

	PageRepo      *persistence.PageRepository
	FragmentStore *stores.FragmentStore

	DB          *database.DB
	Logger      *logging.ChanneledLogger
	PerfTracker *performance.Tracker
}

// NewContainer creates and wires all singleton services
func NewContainer(db *database.DB, logger *logging.ChanneledLogger) *Container {
	tracker := performance.NewTracker(1000)
	pageRepo := persistence.NewPageRepository(db.DB)
	fragmentStore := stores.NewFragmentStore(config.FragmentCacheTTL, config.FragmentCacheCleanup, logger)
	imageProcessor := media.NewImageProcessor(config.MediaBasePath, logger)

	return &Container{
		PageService:  services.NewPageService(pageRepo, fragmentStore, tracker, logger),
		MediaService: services.NewMediaService(imageProcessor, logger),

		PageRepo:      pageRepo,
		FragmentStore: fragmentStore,

		DB:          db,
		Logger:      logger,
		PerfTracker: tracker,
	}
}
