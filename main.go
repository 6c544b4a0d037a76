package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	"github.com/llmgate/promptcheck/chat"
	"github.com/llmgate/promptcheck/gemini"
	googlemonitoring "github.com/llmgate/promptcheck/googleMonitoring"
	"github.com/llmgate/promptcheck/improver"
	"github.com/llmgate/promptcheck/internal/config"
	"github.com/llmgate/promptcheck/internal/handlers"
	"github.com/llmgate/promptcheck/mockllm"
	"github.com/llmgate/promptcheck/openai"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to load .env: %v", err)
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "default"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize configuration
	config, err := config.LoadConfig(env)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Model provider
	generator := newTextGenerator(config.LLM)
	promptImprover := improver.NewImprover(generator, config.LLM.Provider, config.LLM.ModelName())

	// Google Monitoring Client
	googleMonitoringClient, err := googlemonitoring.NewMonitoringClient(ctx, config.GoogleService.ProjectId, config.GoogleService.JsonKey)
	if err != nil {
		log.Fatalf("Failed to create monitoring client: %v", err)
	}
	defer googleMonitoringClient.Close()

	if googleMonitoringClient.PushEnabled() {
		scheduler := cron.New()
		if _, err := scheduler.AddFunc("@every 1m", func() {
			if err := googleMonitoringClient.PushMetrics(ctx); err != nil {
				log.Printf("failed to push metrics: %v", err)
			}
		}); err != nil {
			log.Fatalf("Failed to schedule metrics push: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// Initialize Router
	router := gin.Default()
	router.Use(handlers.RequestIdMiddleware())
	if len(config.Server.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  config.Server.AllowedOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost},
			AllowHeaders:  []string{"Content-Type", "X-Request-Id"},
			ExposeHeaders: []string{"X-Request-Id"},
			MaxAge:        12 * time.Hour,
		}))
	}
	// Metrics handler
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(googleMonitoringClient.Registry(), promhttp.HandlerOpts{})))

	session := chat.NewSession(chat.CheckerFunc(promptImprover.Improve))
	handlers.RegisterRoutes(router,
		handlers.NewHealthHandler(),
		handlers.NewCheckHandler(promptImprover, googleMonitoringClient),
		handlers.NewChatHandler(session))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("listening on %s with %s/%s", server.Addr, promptImprover.Provider(), promptImprover.Model())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server listen failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown failed: %v", err)
	}
}

func newTextGenerator(llmConfig config.LLMConfigs) improver.TextGenerator {
	switch llmConfig.Provider {
	case config.ProviderOpenAI:
		return openai.NewOpenAIClient(llmConfig.OpenAI)
	case config.ProviderMock:
		return mockllm.NewMockLLMClient()
	default:
		return gemini.NewGeminiClient(llmConfig.Gemini)
	}
}
