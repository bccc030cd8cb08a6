package tools

import "github.com/gin-gonic/gin"

// registers direct tool invocation routes
func RegisterRoutes(router *gin.RouterGroup, sqlSearcher SQLSearcher, vectorSearcher VectorSearcher, fetcher RecordFetcher) {
	group := router.Group("/tools")

	{
		group.POST("/sql-search", SQLSearchHandler(sqlSearcher))
		group.POST("/vector-search", VectorSearchHandler(vectorSearcher))
		group.POST("/hybrid-search", HybridSearchHandler(vectorSearcher))
		group.GET("/invoices/:id", InvoiceHandler(fetcher))
	}
}
