package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"weekly-menu-planner/internal/app"
	"weekly-menu-planner/internal/config"
	"weekly-menu-planner/internal/database"
	"weekly-menu-planner/internal/history"
	"weekly-menu-planner/internal/planner"
	"weekly-menu-planner/internal/server"
	"weekly-menu-planner/internal/storage"
	"weekly-menu-planner/internal/telegram"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Fail fast: the API is useless without an auth secret.
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	store, err := storage.NewStateStore(cfg.StatePath)
	if err != nil {
		log.Fatalf("Failed to initialize plan state store: %v", err)
	}

	application := app.NewApp(planner.NewEngine(nil), store, history.NewRepository(db.SQL))

	handler := server.NewHandler(application, cfg.DataDir)
	router := server.NewRouter(handler, cfg.JWTSecret)

	// The Telegram surface is optional; without a token only the REST API
	// is served.
	if cfg.TelegramBotToken != "" {
		bot, err := telegram.NewBot(cfg, application)
		if err != nil {
			log.Fatalf("Failed to initialize Telegram Bot: %v", err)
		}
		router.POST("/webhook", gin.WrapF(bot.HandleWebhook))
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Menu planner server listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
