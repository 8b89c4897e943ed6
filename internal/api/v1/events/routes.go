package events

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, adminGate gin.HandlerFunc, uploadDir string) {
	h := NewHandler(uploadDir)

	group := router.Group("/events")
	{
		group.GET("", h.ListEvents)
		group.POST("", adminGate, h.CreateEvent)
		group.DELETE("/:id", adminGate, h.DeleteEvent)
	}
}
