// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/StillwaterStudio/stillwater-go/internal/application/container"
	"github.com/StillwaterStudio/stillwater-go/internal/presentation/http/handlers"
	"github.com/StillwaterStudio/stillwater-go/internal/presentation/http/middleware"
	"github.com/StillwaterStudio/stillwater-go/pkg/config"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Processed uploads are served straight off disk.
	r.Static("/media", config.MediaBasePath)

	pageHandlers := handlers.NewPageHandlers(container.PageService, container.Logger)
	previewHandlers := handlers.NewPreviewSocketHandlers(container.PageService, container.Logger)
	mediaHandlers := handlers.NewMediaHandlers(container.MediaService, container.Logger)
	systemHandlers := handlers.NewSystemHandlers(container.PerfTracker)

	api := r.Group("/api/v1")
	{
		api.GET("/pages", pageHandlers.ListPages)
		api.GET("/pages/:slug", pageHandlers.GetPage)
		api.PUT("/pages/:slug", pageHandlers.SavePage)
		api.DELETE("/pages/:slug", pageHandlers.DeletePage)
		api.GET("/pages/:slug/fragment", pageHandlers.GetFragment)
		api.POST("/pages/:slug/preview", pageHandlers.PreviewFragment)

		api.POST("/media/images", mediaHandlers.UploadImage)
		api.DELETE("/media/images", mediaHandlers.DeleteImage)

		api.GET("/perf", systemHandlers.PerfStats)
	}

	r.GET("/ws/preview", previewHandlers.Stream)
	r.GET("/health", systemHandlers.Health)

	return r
}
