package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/productai-support-be/internal/modules/support"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/modules/support/handlers"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/modules/support/services"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/shared/utils"

	_ "github.com/MuhamadAgungGumelar/productai-support-be/cmd/api/docs"
)

// @title ProductAI Support API
// @version 1.0
// @description Product support chatbot: catalog answers first, AI assistant fallback
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("🚀 Starting support-api")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Catalog, LLM fallback, resolution engine
	rt, err := support.NewRuntime(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to initialize support runtime")
	}
	defer rt.Close()

	chatService := services.NewChatService(rt.Engine, cfg.ThinkingTime)

	sweeper, err := services.NewSweeper(chatService, cfg.SessionSweepSchedule, cfg.SessionMaxIdle)
	if err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.SessionSweepSchedule).Msg("❌ Invalid SESSION_SWEEP_SCHEDULE")
	}
	sweeper.Start()
	defer sweeper.Stop()

	// Init handlers
	healthHandler := handlers.NewHealthHandler(rt.Fallback.ProviderName(), rt.KnowledgeBase.Source())
	kbHandler := handlers.NewKBHandler(rt.KnowledgeBase)
	conversationHandler := handlers.NewConversationHandler(chatService)

	app := fiber.New(fiber.Config{
		AppName:               "support-api",
		DisableStartupMessage: cfg.IsProduction(),
	})
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.RegisterRoutes(app, healthHandler, kbHandler, conversationHandler)

	go func() {
		<-ctx.Done()
		log.Info().Msg("🛑 Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("❌ Graceful shutdown failed")
		}
	}()

	log.Info().Msgf("🚀 API running at :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("❌ Server stopped")
	}
}
