package routes // Router setup layer.

import (
	"net/http"

	"github.com/Abdulwakil1/Creatorverse/docs"
	"github.com/Abdulwakil1/Creatorverse/global"
	"github.com/Abdulwakil1/Creatorverse/handlers"
	"github.com/Abdulwakil1/Creatorverse/middlewares"
	"github.com/Abdulwakil1/Creatorverse/services"
	"github.com/Abdulwakil1/Creatorverse/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Setup attaches middlewares and registers the pages, the JSON API and the
// static assets.
func Setup(r *gin.Engine, svc services.CreatorService, log *zap.Logger) {
	r.Use(middlewares.RequestLogger(log), middlewares.Recovery(log))

	r.SetHTMLTemplate(views.Templates())
	r.StaticFS("/static", views.Static())
	r.GET("/swagger.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", docs.SwaggerYAML)
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": global.AppVersion})
	})

	// server-rendered pages
	ph := handlers.NewPageHandler(svc, log)
	r.GET("/", ph.Home)
	r.GET("/creators", ph.Creators)
	r.GET("/creators/add", ph.NewCreator)
	r.POST("/creators/add", ph.CreateCreator)
	r.GET("/creators/view/:id", ph.ViewCreator)
	r.GET("/creators/edit/:id", ph.EditCreator)
	r.POST("/creators/edit/:id", ph.UpdateCreator)
	r.GET("/creators/delete/:id", ph.ConfirmDelete)
	r.POST("/creators/delete/:id", ph.DeleteCreator)

	// JSON API, versioned
	api := r.Group("/api/v1")
	ch := handlers.NewCreatorHandler(svc)

	api.GET("/creators", ch.ListCreators)
	api.POST("/creators", ch.CreateCreator)
	api.GET("/creators/:id", ch.GetCreator)
	api.PUT("/creators/:id", ch.UpdateCreator)
	api.DELETE("/creators/:id", ch.DeleteCreator)

	api.GET("/socials/resolve", ch.ResolveSocial)
	api.GET("/socials/validate", ch.ValidateSocial)
	api.GET("/activity", ch.RecentActivity)
}
