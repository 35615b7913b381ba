// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"travelbot/internal/http/handlers"
	"travelbot/internal/http/middleware"
	"travelbot/internal/planner"
)

func NewRouter(plannerService *planner.Service, allowedOrigins []string) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())
	r.Use(cors.New(corsConfig(allowedOrigins)))

	planHandler := handlers.NewPlanHandler(plannerService)
	r.POST("/api/generate-plan", planHandler.Generate)
	r.POST("/api/chat", planHandler.Chat)
	r.POST("/api/save-pdf", planHandler.SavePDF)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "TravelBot API is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	cfg.AllowCredentials = true

	for _, origin := range allowedOrigins {
		if origin == "*" {
			// Wildcard with credentials: reflect the request origin instead
			// of literal "*", which browsers reject for credentialed requests.
			cfg.AllowOriginFunc = func(string) bool { return true }
			return cfg
		}
	}
	cfg.AllowOrigins = allowedOrigins
	return cfg
}
