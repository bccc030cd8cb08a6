package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invosight/server/internal/invoices"
	"github.com/invosight/server/internal/retriever"
)

type mockSQLSearcher struct {
	searchFunc func(ctx context.Context, question string) (string, error)
}

func (m *mockSQLSearcher) Search(ctx context.Context, question string) (string, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, question)
	}
	return `[{"Region":"Central","Sales":1250.5}]`, nil
}

type mockVectorSearcher struct {
	searchFunc func(ctx context.Context, question string, threshold float64, limit int) (string, error)
	hybridFunc func(ctx context.Context, question string, limit int) (string, error)
}

func (m *mockVectorSearcher) Search(ctx context.Context, question string, threshold float64, limit int) (string, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, question, threshold, limit)
	}
	return `{"results":[],"total_relevant_count":0}`, nil
}

func (m *mockVectorSearcher) HybridSearch(ctx context.Context, question string, limit int) (string, error) {
	if m.hybridFunc != nil {
		return m.hybridFunc(ctx, question, limit)
	}
	return `{"results":[]}`, nil
}

type mockFetcher struct {
	fetchFunc func(ctx context.Context, id int64) (*invoices.Record, error)
}

func (m *mockFetcher) FetchByInvoiceID(ctx context.Context, id int64) (*invoices.Record, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, id)
	}
	return &invoices.Record{ID: id, SoldToName: "ACME Corp"}, nil
}

func setupRouter(sql SQLSearcher, vector VectorSearcher, fetcher RecordFetcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), sql, vector, fetcher)

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestSQLSearchHandler_ReturnsPayloadVerbatim(t *testing.T) {
	router := setupRouter(&mockSQLSearcher{}, &mockVectorSearcher{}, &mockFetcher{})

	w := postJSON(t, router, "/api/v1/tools/sql-search", SQLSearchRequest{Question: "Total sales for region Central"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"Region":"Central","Sales":1250.5}]`, w.Body.String())
}

func TestSQLSearchHandler_DegradedPayloadIsStillOK(t *testing.T) {
	sql := &mockSQLSearcher{
		searchFunc: func(_ context.Context, _ string) (string, error) {
			return `{"error": "column \"Salez\" does not exist"}`, nil
		},
	}
	router := setupRouter(sql, &mockVectorSearcher{}, &mockFetcher{})

	w := postJSON(t, router, "/api/v1/tools/sql-search", SQLSearchRequest{Question: "Total salez"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestSQLSearchHandler_HardFailure(t *testing.T) {
	sql := &mockSQLSearcher{
		searchFunc: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("completion service unreachable")
		},
	}
	router := setupRouter(sql, &mockVectorSearcher{}, &mockFetcher{})

	w := postJSON(t, router, "/api/v1/tools/sql-search", SQLSearchRequest{Question: "anything"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestVectorSearchHandler_DefaultsThreshold(t *testing.T) {
	var gotThreshold float64
	var gotLimit int

	vector := &mockVectorSearcher{
		searchFunc: func(_ context.Context, _ string, threshold float64, limit int) (string, error) {
			gotThreshold = threshold
			gotLimit = limit
			return `{"results":[],"total_relevant_count":0}`, nil
		},
	}
	router := setupRouter(&mockSQLSearcher{}, vector, &mockFetcher{})

	w := postJSON(t, router, "/api/v1/tools/vector-search", VectorSearchRequest{Question: "residential roofing projects"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, retriever.DefaultThreshold, gotThreshold)
	assert.Equal(t, 0, gotLimit, "limit defaulting happens inside the retriever")
}

func TestVectorSearchHandler_ExplicitThreshold(t *testing.T) {
	var gotThreshold float64

	vector := &mockVectorSearcher{
		searchFunc: func(_ context.Context, _ string, threshold float64, _ int) (string, error) {
			gotThreshold = threshold
			return `{"results":[],"total_relevant_count":0}`, nil
		},
	}
	router := setupRouter(&mockSQLSearcher{}, vector, &mockFetcher{})

	threshold := 0.35
	w := postJSON(t, router, "/api/v1/tools/vector-search", VectorSearchRequest{
		Question:  "roofing projects",
		Threshold: &threshold,
		Limit:     5,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0.35, gotThreshold)
}

func TestHybridSearchHandler(t *testing.T) {
	vector := &mockVectorSearcher{
		hybridFunc: func(_ context.Context, question string, limit int) (string, error) {
			assert.Equal(t, "roofing", question)
			assert.Equal(t, 5, limit)
			return `{"results":[{"ID":2}]}`, nil
		},
	}
	router := setupRouter(&mockSQLSearcher{}, vector, &mockFetcher{})

	w := postJSON(t, router, "/api/v1/tools/hybrid-search", HybridSearchRequest{Question: "roofing", Limit: 5})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ID":2`)
}

func TestToolRoutes_MissingQuestion(t *testing.T) {
	router := setupRouter(&mockSQLSearcher{}, &mockVectorSearcher{}, &mockFetcher{})

	for _, path := range []string{
		"/api/v1/tools/sql-search",
		"/api/v1/tools/vector-search",
		"/api/v1/tools/hybrid-search",
	} {
		w := postJSON(t, router, path, map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestInvoiceHandler_ReturnsRecord(t *testing.T) {
	fetcher := &mockFetcher{
		fetchFunc: func(ctx context.Context, id int64) (*invoices.Record, error) {
			require.Equal(t, int64(101), id)
			return &invoices.Record{ID: 101, SoldToName: "ACME Corp", Region: "Central"}, nil
		},
	}
	router := setupRouter(&mockSQLSearcher{}, &mockVectorSearcher{}, fetcher)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tools/invoices/101", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var record invoices.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, int64(101), record.ID)
	assert.Equal(t, "ACME Corp", record.SoldToName)
}

func TestInvoiceHandler_NotFound(t *testing.T) {
	fetcher := &mockFetcher{
		fetchFunc: func(ctx context.Context, id int64) (*invoices.Record, error) {
			return nil, pgx.ErrNoRows
		},
	}
	router := setupRouter(&mockSQLSearcher{}, &mockVectorSearcher{}, fetcher)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tools/invoices/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoiceHandler_BadID(t *testing.T) {
	router := setupRouter(&mockSQLSearcher{}, &mockVectorSearcher{}, &mockFetcher{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tools/invoices/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
