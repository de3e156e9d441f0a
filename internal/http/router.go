package http

import (
	"github.com/gin-gonic/gin"

	"github.com/veloura/storefront/internal/config"
	"github.com/veloura/storefront/internal/http/controller"
	"github.com/veloura/storefront/internal/http/middleware"
)

func InitRouter(_ *config.Config, server *gin.Engine, ctr *controller.Controller,
	catalogCtr *controller.CatalogController, orderCtr *controller.OrderController,
	prefsCtr *controller.PrefsController, chatCtr *controller.ChatController) *gin.Engine {

	// Apply recovery middleware globally to prevent panics from crashing the server
	server.Use(middleware.Recovery())
	server.Use(middleware.RequestLogger())

	server.GET("/ping", ctr.Ping)

	// Catalog view
	server.GET("/products", catalogCtr.ListProducts)

	// Order flow
	orders := server.Group("/order")
	{
		orders.POST("/select", orderCtr.Select)
		orders.POST("/quantity", orderCtr.SetQuantity)
		orders.POST("/submit", orderCtr.Submit)
		orders.POST("/close", orderCtr.Close)
	}

	// Preferences
	preferences := server.Group("/preferences")
	{
		preferences.GET("/theme", prefsCtr.GetTheme)
		preferences.PUT("/theme", prefsCtr.PutTheme)
	}

	// Chat widget
	chatGroup := server.Group("/chat")
	{
		chatGroup.POST("/messages", chatCtr.PostMessage)
		chatGroup.GET("/log", chatCtr.GetLog)
	}

	return server
}
