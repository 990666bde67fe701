package support

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/productai-support-be/internal/core/agent"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/core/kb"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/shared/database"
)

// Runtime holds everything a front end needs to answer questions.
type Runtime struct {
	KnowledgeBase *kb.KnowledgeBase
	Fallback      *llm.FallbackClient
	Engine        *agent.Engine

	db *database.DB
}

// NewRuntime loads the catalog and the LLM fallback. The database is only
// opened when DATABASE_URL is set and is closed again by Close.
func NewRuntime(ctx context.Context, cfg *config.Config) (*Runtime, error) {
	rt := &Runtime{}

	var retriever *kb.Retriever
	if cfg.DatabaseURL != "" {
		db, err := database.NewDB(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		rt.db = db
		retriever = kb.NewRetriever(db.GORM)
	}

	catalog, err := kb.LoadCatalog(ctx, retriever, cfg.CatalogFile)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	rt.KnowledgeBase = catalog
	log.Info().
		Str("source", catalog.Source()).
		Int("products", len(catalog.LookupAllProducts())).
		Int("policies", len(catalog.Policies())).
		Msg("📚 Catalog loaded")

	providerCfg, err := llm.LoadProviderFromEnv()
	if err != nil {
		rt.Close()
		return nil, err
	}
	fallback, err := llm.NewFallbackClientFromConfig(providerCfg)
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.Fallback = fallback
	rt.Engine = agent.NewEngine(catalog, fallback)

	return rt, nil
}

func (rt *Runtime) Close() {
	if rt.db != nil {
		_ = rt.db.Close()
		rt.db = nil
	}
}
