package packs

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, adminGate gin.HandlerFunc, uploadDir string) {
	h := NewHandler(uploadDir)

	group := router.Group("/packs")
	{
		group.GET("", h.ListPacks)
		group.POST("", adminGate, h.UpsertPack)
		group.DELETE("/:id", adminGate, h.DeletePack)
	}
}
