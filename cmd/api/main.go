package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/config"
	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/domain/client"
	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/domain/payment"
	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/domain/wallet"
	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/middleware"
	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/database"
	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/email"
	"github.com/FranciscoJTHG/BilleteraVIrtual/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Billetera Virtual API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	mailClient := email.NewClient(email.Config{
		APIKey:    cfg.MailAPIKey,
		APIURL:    cfg.MailAPIURL,
		FromEmail: cfg.MailFromEmail,
		FromName:  cfg.MailFromName,
	})

	balanceCache := wallet.NewBalanceCache(redis, cfg.BalanceCacheTTL)

	// ---------- Repositories ----------
	clientRepo := client.NewRepository(db)
	walletRepo := wallet.NewRepository(db)
	paymentRepo := payment.NewRepository(db)

	// ---------- Services ----------
	clientService := client.NewService(clientRepo)
	walletService := wallet.NewService(walletRepo, balanceCache)
	paymentService := payment.NewService(paymentRepo, mailClient, balanceCache, cfg.PaymentMaxAmount, cfg.PaymentTokenTTL)

	// ---------- Handlers ----------
	clientHandler := client.NewHandler(clientService)
	walletHandler := wallet.NewHandler(walletService)
	paymentHandler := payment.NewHandler(paymentService)

	// ---------- Background jobs ----------
	jobCtx, stopJobs := context.WithCancel(context.Background())
	defer stopJobs()
	sweeper := payment.NewSweeper(paymentRepo, cfg.SweepInterval)
	go sweeper.Run(jobCtx)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/clients", clientHandler.Routes())
		r.Mount("/wallets", walletHandler.Routes())
		r.Mount("/payments", paymentHandler.Routes())
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	stopJobs()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
