package orders

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the order endpoints. Mutations the admin panel
// drives go through the admin gate; checkout and status polling stay open.
func RegisterRoutes(router *gin.RouterGroup, adminGate gin.HandlerFunc) {
	group := router.Group("/orders")
	{
		group.GET("", ListOrders)
		group.POST("", CreateOrder)
		group.GET("/:id/status", GetOrderStatus)
		group.POST("/update", adminGate, UpdateOrderStatus)
		group.DELETE("/:id", adminGate, DeleteOrder)
		group.DELETE("", adminGate, DeleteAllOrders)
	}
}
