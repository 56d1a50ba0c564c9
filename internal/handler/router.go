package handler

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/resumeboost-api/internal/config"
	"github.com/yourusername/resumeboost-api/internal/middleware"
)

// NewRouter wires middleware and routes.
func NewRouter(cfg *config.Config, analyze *AnalyzeHandler, assets fs.FS) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}))

	// Multipart parts beyond this spill to disk; keep it at the body cap.
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "resumeboost-api",
			"time":    time.Now().UTC(),
		})
	})

	r.GET("/", analyze.Index)
	r.StaticFS("/static", http.FS(assets))
	r.POST("/analyze", middleware.BodyLimit(cfg.MaxUploadBytes, MsgUploadTooLarge), analyze.Analyze)

	return r
}
