package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/qr", qrHandler)
		api.POST("/cards/pdf", cardsPDFHandler)
		api.POST("/cards/preview", cardsPreviewHandler)
	}
}
