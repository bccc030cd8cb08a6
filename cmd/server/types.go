package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invosight/server/internal/agent"
	"github.com/invosight/server/internal/config"
	"github.com/invosight/server/internal/invoices"
	"github.com/invosight/server/internal/llm"
	"github.com/invosight/server/internal/retriever"
	"github.com/invosight/server/internal/router"
	"github.com/invosight/server/internal/translator"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool
	config   *config.Config
	services *Services
	router   *gin.Engine
}

// holds all external service clients (LLM, tools, router, agent)
type Services struct {
	Agent      *agent.Agent
	LLM        llm.LLM
	Store      *invoices.Store
	Translator *translator.Translator
	Retriever  *retriever.Retriever
	Router     *router.Router
}
