package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nutujean/lumina-vietii-backend/internal/config"
	"github.com/Nutujean/lumina-vietii-backend/internal/payment"
	"github.com/Nutujean/lumina-vietii-backend/internal/store"
	"github.com/Nutujean/lumina-vietii-backend/internal/user"
	"github.com/Nutujean/lumina-vietii-backend/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the Lumina Vietii API server.

Configuration comes from the environment (or a .env file):
  PORT               listen port (default 5000)
  DATABASE_URL       Postgres DSN; without it the server runs without a database
  STRIPE_SECRET_KEY  Stripe secret key; without it payments are disabled
  FRONTEND_URL       base URL for the checkout redirect pages`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var users store.UserStore = store.Unavailable{}
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL nu este setat - serverul pornește fără baza de date")
	} else if pg, err := store.NewPostgresStore(ctx, cfg.DatabaseURL); err != nil {
		// Same degradation as a missing DSN: log and keep serving.
		log.Printf("eroare la conectarea bazei de date: %v", err)
	} else {
		log.Println("baza de date conectată")
		users = pg
	}
	defer users.Close()

	var payments payment.Gateway = payment.Disabled{}
	if cfg.StripeSecretKey == "" {
		log.Println("STRIPE_SECRET_KEY nu este setat - plățile sunt dezactivate")
	} else {
		payments = payment.NewStripeGateway(cfg.StripeSecretKey)
		log.Println("cheia Stripe încărcată")
	}

	server := web.NewServer(user.NewService(users), payments, cfg.FrontendURL)

	addr := serveAddr
	if addr == "" {
		addr = cfg.Addr()
	}

	srv := &http.Server{Addr: addr, Handler: server.Handler()}
	go func() {
		log.Printf("server pornit pe %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("oprire server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Println("server oprit")
	return nil
}
