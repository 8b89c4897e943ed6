package settings

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, adminGate gin.HandlerFunc, uploadDir string) {
	h := NewHandler(uploadDir)

	group := router.Group("/settings")
	{
		group.GET("", h.GetSettings)
		group.POST("", adminGate, h.UpdateSettings)
		group.POST("/profile-pic", adminGate, h.UploadProfilePic)
		group.POST("/game-icon", adminGate, h.UploadGameIcon)
		group.POST("/payment-methods", adminGate, h.UploadPaymentBanner)
	}
}
