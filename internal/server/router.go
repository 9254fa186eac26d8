package server

import (
	handler "lostfound-market/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(api handler.MarketAPI) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // correlate logs with responses
	router.Use(RequestLoggerMiddleware) // custom request logging

	marketHandler := handler.NewMarketHandler(api)

	auth := router.Group("/auth")
	{
		auth.POST("/login", marketHandler.LoginHandler)
		auth.POST("/signup", marketHandler.SignupHandler)
	}

	items := router.Group("/items")
	{
		items.GET("", marketHandler.ListItemsHandler)
		items.GET("/recent", marketHandler.RecentItemsHandler)
		items.GET("/:id", marketHandler.GetItemHandler)
		items.PATCH("/:id/approve", marketHandler.ApproveItemHandler)
		items.DELETE("/:id", marketHandler.DeleteItemHandler)
	}

	router.POST("/lost-items", marketHandler.ReportLostItemHandler)
	router.POST("/found-items", marketHandler.ReportFoundItemHandler)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", marketHandler.ListAuctionsHandler)
		auctions.POST("", marketHandler.CreateAuctionHandler)
		auctions.GET("/:id", marketHandler.GetAuctionHandler)
		auctions.POST("/:id/bid", marketHandler.PlaceBidHandler)
	}

	router.POST("/claims", marketHandler.SubmitClaimHandler)
	router.POST("/contact", marketHandler.ContactHandler)
	router.GET("/stats", marketHandler.StatsHandler)

	return router
}
