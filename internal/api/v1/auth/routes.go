package auth

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, adminGate gin.HandlerFunc) {
	group := router.Group("/auth")
	{
		group.POST("/signup", Signup)
		group.POST("/login", Login)
	}

	// History backs the admin panel's account view.
	router.GET("/accounts/history", adminGate, AccountHistory)
}
