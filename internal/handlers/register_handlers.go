package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/harborops/charter_accounting_app/cmd/docs"
	"github.com/harborops/charter_accounting_app/internal/core/services"
	"github.com/harborops/charter_accounting_app/internal/middleware"
	"github.com/harborops/charter_accounting_app/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, svcs *services.ServicesContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	setupAPIV1Routes(r, cfg, svcs)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the entity
// route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, svcs *services.ServicesContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerEventRoutes(v1, svcs)
	registerJournalRoutes(v1, svcs)
	registerCompanyRoutes(v1, svcs)
	registerRecognitionRoutes(v1, svcs)
}

func registerEventRoutes(group *gin.RouterGroup, svcs *services.ServicesContainer) {
	h := newEventHandler(svcs.PipelineSvc, svcs.JournalSvc)
	events := group.Group("/events")
	events.POST("", h.createAndProcessEvent)
	events.GET("/:eventID", h.getEvent)
	events.POST("/:eventID/cancel", h.cancelEvent)
	events.GET("/:eventID/journals", h.listEventJournals)
}

func registerJournalRoutes(group *gin.RouterGroup, svcs *services.ServicesContainer) {
	h := newJournalHandler(svcs.JournalSvc)
	journals := group.Group("/journals")
	journals.GET("", h.listJournalEntries)
	journals.GET("/:entryID", h.getJournalEntry)
}

func registerCompanyRoutes(group *gin.RouterGroup, svcs *services.ServicesContainer) {
	settingH := newSettingHandler(svcs.SettingSvc)
	closingH := newClosingHandler(svcs.ClosingSvc)
	companies := group.Group("/companies/:companyID")
	companies.GET("/settings", settingH.listSettings)
	companies.PUT("/settings", settingH.upsertSetting)
	companies.GET("/settings/:eventType", settingH.getSetting)
	companies.GET("/close/:year/check", closingH.preCloseCheck)
	companies.POST("/close/:year", closingH.closeFiscalYear)
}

func registerRecognitionRoutes(group *gin.RouterGroup, svcs *services.ServicesContainer) {
	h := newRecognitionHandler(svcs.RecognitionSvc)
	recognitions := group.Group("/recognitions")
	recognitions.POST("", h.createRecognition)
	recognitions.POST("/sweep", h.runSweep)
	recognitions.GET("/:recognitionID", h.getRecognition)
	recognitions.POST("/:recognitionID/recognize", h.recognizeManually)
	recognitions.PUT("/:recognitionID/dates", h.updateServiceDates)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
