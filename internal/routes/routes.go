package routes

import (
	"dayjob-record/internal/handlers"
	"dayjob-record/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes builds the router. requireAuth puts the API behind JWT authentication.
func SetupRoutes(h *handlers.Handler, requireAuth bool) *gin.Engine {
	ginRouter := gin.Default()

	// CORS middleware (for a browser-based UI served from another origin)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Day job record API is running",
		})
	})

	api := ginRouter.Group("/api")
	{
		api.POST("/login", h.Login)
	}

	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware(requireAuth))
	{
		protectedRoutes.GET("/options", h.GetOptions)

		protectedRoutes.GET("/tasks", h.GetTasks)
		protectedRoutes.GET("/tasks/:id", h.GetTaskByID)
		protectedRoutes.POST("/tasks", h.CreateTask)
		protectedRoutes.PUT("/tasks/:id", h.UpdateTask)
		protectedRoutes.PATCH("/tasks/:id/visibility", h.UpdateTaskVisibility)
		protectedRoutes.DELETE("/tasks/:id", h.DeleteTask)

		protectedRoutes.GET("/tasks/:id/items", h.GetTaskItems)
		protectedRoutes.POST("/tasks/:id/items", h.CreateTaskItem)
		protectedRoutes.PUT("/items/:id", h.UpdateTaskItem)
		protectedRoutes.DELETE("/items/:id", h.DeleteTaskItem)

		protectedRoutes.POST("/reports", h.GenerateReport)
		protectedRoutes.GET("/stats", h.GetStats)
		protectedRoutes.GET("/ws", h.ChangeFeed)
	}

	return ginRouter
}
