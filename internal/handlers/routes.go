package handlers

import "github.com/gin-gonic/gin"

func RegisterRoutes(router gin.IRouter, healthHandler *HealthHandler, checkHandler *CheckHandler, chatHandler *ChatHandler) {
	router.GET("/health", healthHandler.IsHealthy)

	router.POST("/api/check", checkHandler.ProcessCheck)

	router.GET("/", chatHandler.ShowChat)
	router.POST("/chat/submit", chatHandler.SubmitMessage)
	router.POST("/chat/messages/:index/delete", chatHandler.DeleteMessage)
	router.POST("/chat/clear", chatHandler.ClearMessages)
}
