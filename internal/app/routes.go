package app

import (
	"time"

	"Calendar/internal/cache"
	"Calendar/internal/config"
	"Calendar/internal/daterange"
	"Calendar/internal/handlers"
	"Calendar/internal/repo"
	"Calendar/internal/service"
	"Calendar/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, loc *time.Location, source repo.RecordSource, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	api := r.Group("/api/v1")

	sessionStore := session.NewStore(rdb, cfg.Redis.SessionTTL.Duration())
	withSession := api.Group("", session.Ensure(sessionStore))

	recordCache := cache.NewRecordCache(rdb, cfg.Redis.DefaultTTL.Duration())
	clock := func() time.Time { return time.Now().In(loc) }
	viewSvc := service.NewViewService(daterange.NewCatalog(), source, recordCache, sessionStore, clock)

	registerViewRoutes(withSession, handlers.NewViewHandler(viewSvc, loc))
	registerSessionRoutes(withSession, handlers.NewSessionHandler(sessionStore))
	registerRecordRoutes(api, handlers.NewRecordHandler(viewSvc, loc))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":  "Calendar Range API",
			"version":  cfg.App.Version,
			"env":      cfg.App.Env,
			"timezone": cfg.App.Timezone,
			"records":  cfg.Records.Source,
			"docs":     "/swagger/index.html",
			"spec":     "/swagger-doc.json",
			"health":   "/health",
			"api":      "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerViewRoutes(api *gin.RouterGroup, h *handlers.ViewHandler) {
	api.GET("/ranges", h.Ranges)
	api.GET("/view", h.Get)
	api.DELETE("/view", h.Reset)
	api.POST("/view/preset", h.SelectPreset)
	api.POST("/view/custom", h.SelectCustom)
}

func registerSessionRoutes(api *gin.RouterGroup, h *handlers.SessionHandler) {
	api.DELETE("/session", h.End)
}

func registerRecordRoutes(api *gin.RouterGroup, h *handlers.RecordHandler) {
	api.POST("/records", h.Create)
	api.POST("/records/reload", h.Reload)
}
