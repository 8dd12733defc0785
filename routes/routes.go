package routes

import (
	"github.com/gin-gonic/gin"

	config "github.com/phillip/charity-admin-go/config"
	controllers "github.com/phillip/charity-admin-go/controllers"
	middleware "github.com/phillip/charity-admin-go/middleware"
	"github.com/phillip/charity-admin-go/storage"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	// local uploads are served directly
	r.Static(storage.PublicPrefix, cfg.UploadDir)

	api := r.Group("/api")
	// Session checks run only when a signing secret is configured; an
	// unset secret means the fronting platform owns authentication.
	if cfg.JWTSecret != "" {
		api.Use(middleware.AuthMiddleware(cfg))
	}

	causes := api.Group("/causes")
	{
		causes.GET("", controllers.ListCauses(cfg))
		causes.POST("", controllers.CreateCause(cfg))
		causes.GET("/:id", controllers.GetCause(cfg))
		causes.PATCH("/:id", controllers.UpdateCause(cfg))
		causes.DELETE("/:id", controllers.DeleteCause(cfg))
	}

	events := api.Group("/events")
	{
		events.GET("", controllers.ListEvents(cfg))
		events.POST("", controllers.CreateEvent(cfg))
		events.GET("/:id", controllers.GetEvent(cfg))
		events.PATCH("/:id", controllers.UpdateEvent(cfg))
		events.DELETE("/:id", controllers.DeleteEvent(cfg))
	}

	gallery := api.Group("/gallery")
	{
		gallery.GET("", controllers.ListGallery(cfg))
		gallery.POST("", controllers.CreateGalleryItem(cfg))
		gallery.GET("/:id", controllers.GetGalleryItem(cfg))
		gallery.PATCH("/:id", controllers.UpdateGalleryItem(cfg))
		gallery.DELETE("/:id", controllers.DeleteGalleryItem(cfg))
	}

	teams := api.Group("/teams")
	{
		teams.GET("", controllers.ListTeams(cfg))
		teams.POST("", controllers.CreateTeamMember(cfg))
		teams.GET("/:id", controllers.GetTeamMember(cfg))
		teams.PATCH("/:id", controllers.UpdateTeamMember(cfg))
		teams.DELETE("/:id", controllers.DeleteTeamMember(cfg))
	}

	api.POST("/upload", controllers.UploadImage(cfg))
	api.DELETE("/delete-image", controllers.DeleteImage(cfg))
}
