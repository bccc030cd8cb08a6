package tools

// SQLSearchRequest represents the request body for direct SQL search
type SQLSearchRequest struct {
	Question string `json:"question" binding:"required"`
}

// VectorSearchRequest represents the request body for direct similarity search
type VectorSearchRequest struct {
	Question  string   `json:"question" binding:"required"`
	Threshold *float64 `json:"threshold"`
	Limit     int      `json:"limit"`
}

// HybridSearchRequest represents the request body for fused search
type HybridSearchRequest struct {
	Question string `json:"question" binding:"required"`
	Limit    int    `json:"limit"`
}
