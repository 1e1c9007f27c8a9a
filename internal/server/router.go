package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with CORS and the protected API routes.
func NewRouter(h *Handler, jwtSecret string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	r.GET("/health", h.GetHealth)

	api := r.Group("/api")
	api.Use(AuthMiddleware(jwtSecret))
	{
		api.GET("/plan", h.GetPlan)
		api.POST("/plan/regenerate", h.RegenerateWeek)
		api.POST("/plan/slots/:day/:meal/regenerate", h.RegenerateSlot)
		api.POST("/plan/slots/:day/:meal/select", h.SelectMeal)
		api.GET("/plan/export", h.ExportPlan)
		api.GET("/groceries", h.GetGroceries)
		api.GET("/groceries/export", h.ExportGroceries)
	}

	return r
}
