package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"asks_web/internal/api/handlers"
	"asks_web/internal/middleware"
	"asks_web/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	askHandler := handlers.NewAskHandler(services.Ask)
	feedHandler := handlers.NewFeedHandler(services.Feed)

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 基本的健康檢查
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Ask 相關路由，全部需要操作者身份
	asks := api.Group("/asks")
	asks.Use(middleware.Identity())
	{
		asks.POST("", askHandler.Create)                    // 提出問題
		asks.GET("", askHandler.FindAll)                    // 查詢問題列表
		asks.GET("/feed", feedHandler.HandleFeed)           // 訂閱房間的即時動態
		asks.GET("/:id", askHandler.FindByID)               // 查詢單個問題
		asks.POST("/:id/answer", askHandler.Answer)         // 回答問題
		asks.DELETE("/:id", askHandler.Delete)              // 刪除問題
		asks.DELETE("/:id/answer", askHandler.DeleteAnswer) // 撤回回答
	}
}
