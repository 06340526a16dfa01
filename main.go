package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"kasir/internal/config"
	"kasir/internal/database"
	"kasir/internal/repositories"
	"kasir/internal/server"
	"kasir/internal/services"
	"kasir/pkg/rabbitmq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.AppPort)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.AppPort, err)
	}

	if err := run(ctx, cfg, ln); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// run serves the API on ln until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config, ln net.Listener) error {
	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// --- Initialize Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	if cfg.AdminPassword != "" {
		if _, err := authService.EnsureUser(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			return fmt.Errorf("failed to ensure admin user: %w", err)
		}
	}

	// Order events are optional; the register keeps working without a broker.
	var events services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL == "" {
		log.Println("RABBITMQ_URL not set. Order events are disabled.")
	} else if mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}); err != nil {
		log.Printf("Warning: Order events are disabled: %v", err)
	} else {
		events = mqClient
	}

	app := server.New(server.Services{
		Orders:     services.NewOrderService(orderRepo, events, cfg.OrderListLimit),
		Products:   services.NewProductService(productRepo, categoryRepo),
		Categories: services.NewCategoryService(categoryRepo),
		Reports:    services.NewReportService(orderRepo),
		Auth:       authService,
	}, server.Options{
		AuthRequired:  cfg.AuthRequired,
		EventsEnabled: mqClient != nil,
		RequestLog:    true,
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting server on %s", ln.Addr())
		return app.Listener(ln)
	})

	if mqClient != nil {
		g.Go(func() error {
			return mqClient.ConsumeOrderEvents(rabbitmq.LogOrderEvent)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")
		err := app.ShutdownWithTimeout(cfg.ShutdownTimeout)
		// Closing the client also ends the consumer loop.
		if mqClient != nil {
			if closeErr := mqClient.Close(); closeErr != nil {
				log.Printf("Error closing RabbitMQ client: %v", closeErr)
			}
		}
		return err
	})

	return g.Wait()
}
