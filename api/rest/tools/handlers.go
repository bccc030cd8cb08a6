package tools

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/invosight/server/internal/errors"
	"github.com/invosight/server/internal/invoices"
	"github.com/invosight/server/internal/logger"
	"github.com/invosight/server/internal/retriever"
)

// interface for natural-language to SQL retrieval
type SQLSearcher interface {
	Search(ctx context.Context, question string) (string, error)
}

// interface for single-record lookup
type RecordFetcher interface {
	FetchByInvoiceID(ctx context.Context, id int64) (*invoices.Record, error)
}

// interface for embedding-based retrieval
type VectorSearcher interface {
	Search(ctx context.Context, question string, threshold float64, limit int) (string, error)
	HybridSearch(ctx context.Context, question string, limit int) (string, error)
}

// Each tool returns its payload verbatim: the handlers expose the same UTF-8
// JSON strings the agent consumes, including degraded {"error": ...} bodies.

// creates a handler for direct SQL search
func SQLSearchHandler(searcher SQLSearcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SQLSearchRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		result, err := searcher.Search(c.Request.Context(), req.Question)
		if err != nil {
			logger.ErrorErr(err, "sql search failed")
			errors.InternalError(c, "failed to run sql search", err)
			return
		}

		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(result))
	}
}

// creates a handler for direct similarity search
func VectorSearchHandler(searcher VectorSearcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VectorSearchRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		threshold := retriever.DefaultThreshold
		if req.Threshold != nil {
			threshold = *req.Threshold
		}

		result, err := searcher.Search(c.Request.Context(), req.Question, threshold, req.Limit)
		if err != nil {
			logger.ErrorErr(err, "vector search failed")
			errors.InternalError(c, "failed to run vector search", err)
			return
		}

		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(result))
	}
}

// creates a handler that looks up one invoice record, the reference point
// for "find invoices like #X" questions
func InvoiceHandler(fetcher RecordFetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			errors.BadRequest(c, "invoice id must be an integer", err)
			return
		}

		record, err := fetcher.FetchByInvoiceID(c.Request.Context(), id)
		if err != nil {
			if err == pgx.ErrNoRows {
				errors.NotFound(c, "invoice")
				return
			}

			logger.ErrorErr(err, "invoice lookup failed", "id", id)
			errors.InternalError(c, "failed to fetch invoice", err)

			return
		}

		c.JSON(http.StatusOK, record)
	}
}

// creates a handler for fused full-text and vector search
func HybridSearchHandler(searcher VectorSearcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req HybridSearchRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		result, err := searcher.HybridSearch(c.Request.Context(), req.Question, req.Limit)
		if err != nil {
			logger.ErrorErr(err, "hybrid search failed")
			errors.InternalError(c, "failed to run hybrid search", err)
			return
		}

		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(result))
	}
}
