package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invosight/server/internal/agent"
	"github.com/invosight/server/internal/config"
	"github.com/invosight/server/internal/invoices"
	"github.com/invosight/server/internal/llm"
	"github.com/invosight/server/internal/retriever"
	"github.com/invosight/server/internal/router"
	"github.com/invosight/server/internal/translator"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config, db *pgxpool.Pool) (*Services, error) {
	llmClient, err := llm.NewLLM(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	store := invoices.NewStore(db)

	translatorClient := translator.New(llmClient, store)
	retrieverClient := retriever.New(llmClient, store)

	toolRouter := router.New(
		router.ExecutorFunc(func(ctx context.Context, question string) (string, error) {
			return translatorClient.Search(ctx, question)
		}),
		router.ExecutorFunc(func(ctx context.Context, question string) (string, error) {
			return retrieverClient.Search(ctx, question, retriever.DefaultThreshold, retriever.DefaultLimit)
		}),
	)

	agentClient := agent.New(toolRouter, llmClient)

	return &Services{
		Agent:      agentClient,
		LLM:        llmClient,
		Store:      store,
		Translator: translatorClient,
		Retriever:  retrieverClient,
		Router:     toolRouter,
	}, nil
}
