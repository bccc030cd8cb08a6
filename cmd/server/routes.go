package main

import (
	"github.com/gin-gonic/gin"

	"github.com/invosight/server/api/rest/chat"
	"github.com/invosight/server/api/rest/health"
	"github.com/invosight/server/api/rest/tools"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		chat.RegisterRoutes(v1, server.services.Agent)
		tools.RegisterRoutes(v1, server.services.Translator, server.services.Retriever, server.services.Store)
	}
}
