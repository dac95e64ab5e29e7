package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/ashub/ash/api/swagger"
	"github.com/ashub/ash/pkg/ash/analytics"
	"github.com/ashub/ash/pkg/ash/config"
	"github.com/ashub/ash/pkg/ash/database"
	"github.com/ashub/ash/pkg/ash/fixtures"
	"github.com/ashub/ash/pkg/ash/logging"
	"github.com/ashub/ash/pkg/ash/members"
	"github.com/ashub/ash/pkg/ash/planner"
	"github.com/ashub/ash/pkg/ash/questions"
	"github.com/ashub/ash/pkg/ash/resources"
	"github.com/ashub/ash/pkg/ash/studygroups"
	"github.com/ashub/ash/pkg/ash/tags"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the collaborators the HTTP server is built from
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *zap.Logger
}

// App is the assembled server
type App struct {
	Handler  http.Handler
	Engine   *gin.Engine
	Groups   *studygroups.Service
	Fixtures *fixtures.Loader
}

// New returns the fully wired HTTP handler
func New(deps Deps) http.Handler {
	return Build(deps).Handler
}

// Build wires every feature package onto one gin engine
func Build(deps Deps) *App {
	cfg, db, log := deps.Config, deps.DB, deps.Log

	r := gin.New()
	r.Use(logging.Recovery(log))
	r.Use(logging.RequestLogger(log))
	r.Use(SecurityHeaders())

	registry := members.NewRegistry(db)
	groupSvc := studygroups.NewService(db, studygroups.NewRepository(db, cfg.DefaultCapacity), registry, log)
	resourceHandler := resources.NewHandler(db, registry, resources.NewStore(cfg.UploadDir), log)
	loader := fixtures.NewLoader(db, groupSvc, resourceHandler, log)

	r.GET("/health", func(c *gin.Context) {
		if err := database.Ping(db); err != nil {
			log.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "ok",
				"service": "ash",
			})
		})

		studygroups.NewHandler(groupSvc, log).RegisterRoutes(api.Group("/study-groups"))
		members.NewHandler(db, log).RegisterRoutes(api.Group("/members"))
		tags.NewHandler(db, log).RegisterRoutes(api)
		resourceHandler.RegisterRoutes(api.Group("/resources"))
		questions.NewHandler(db, registry, log).RegisterRoutes(api)
		planner.NewHandler(db, registry, log).RegisterRoutes(api)
		analytics.NewHandler(db, log).RegisterRoutes(api)
		fixtures.NewHandler(loader, log).RegisterRoutes(api)
	}

	r.Static(strings.TrimSuffix(resources.PublicPrefix, "/"), cfg.UploadDir)

	staticDir := cfg.StaticDir
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err != nil || !info.IsDir() {
			log.Info("no static front end found, API only mode", zap.String("dir", staticDir))
			staticDir = ""
		} else {
			log.Info("serving static front end", zap.String("dir", staticDir))
		}
	}
	r.NoRoute(frontend(staticDir))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", logging.HeaderRequestID},
		ExposedHeaders: []string{logging.HeaderRequestID},
	})

	return &App{
		Handler:  c.Handler(r),
		Engine:   r,
		Groups:   groupSvc,
		Fixtures: loader,
	}
}

// frontend serves files from dir and falls back to index.html so client-side
// routes resolve. API paths and an empty dir always answer JSON 404.
func frontend(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		isRead := c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead
		if dir == "" || !isRead || path == "/api" || strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		file := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+path)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	}
}
