package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/example/print-storefront/internal/api"
	"github.com/example/print-storefront/internal/auth"
	"github.com/example/print-storefront/internal/cart"
	"github.com/example/print-storefront/internal/catalog"
	"github.com/example/print-storefront/internal/checkout"
	"github.com/example/print-storefront/internal/config"
	"github.com/example/print-storefront/internal/delivery"
	"github.com/example/print-storefront/internal/events"
	"github.com/example/print-storefront/internal/order"
	"github.com/example/print-storefront/internal/payment"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[API] Configuration error: %v", err)
	}

	log.Println("[API] ========================================")
	log.Println("[API] Print Storefront API")
	log.Println("[API] ========================================")
	log.Printf("[API] Order store: %s", cfg.OrderStore)
	log.Printf("[API] Kafka: %v", cfg.KafkaBrokers)
	log.Printf("[API] Topic: %s", cfg.KafkaTopic)

	// Initialize Kafka producer
	producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()

	// Initialize order store
	store, cleanup, err := newOrderStore(ctx, cfg)
	if err != nil {
		log.Fatalf("[API] Failed to initialize order store: %v", err)
	}
	defer cleanup()

	// Initialize delivery estimator: carrier adapter when an API key is
	// configured, deterministic fallback otherwise
	var estimator delivery.Estimator
	if cfg.CarrierAPIKey != "" {
		estimator = delivery.NewCarrierClient(cfg.CarrierAPIKey, cfg.CarrierAPIURL, cfg.CarrierTimeout)
		log.Printf("[API] Delivery: carrier adapter (%s)", cfg.CarrierAPIURL)
	} else {
		estimator = delivery.NewFallbackEstimator()
		log.Println("[API] Delivery: fallback estimator (no carrier API key)")
	}

	// Initialize domain services
	cat := catalog.Seed()
	carts := cart.NewManager(func(sessionID string) cart.Persistence {
		return cart.NewFilePersistence(cfg.CartDir, sessionID)
	})
	orderSvc := order.NewService(store, producer)
	verifier := payment.NewVerifier(cfg.PaymentPrivateKey)
	processor := payment.NewProcessor(orderSvc)
	checkoutSvc := checkout.NewService(orderSvc, estimator, verifier, cfg.PaymentPublicKey, cfg.SenderCityRef)

	// Initialize admin auth
	jwtService := auth.NewJWTService(cfg.JWTSecret, 12*time.Hour)
	adminAuth := api.NewAdminAuthenticator(cfg.AdminEmail, cfg.AdminPasswordHash, jwtService)

	// Initialize API
	handlers := api.NewHandlers(cat, carts, checkoutSvc, orderSvc, processor, verifier, estimator, adminAuth)
	router := api.NewRouter(handlers, jwtService)

	// Start HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("[API] Server started on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("[API] Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[API] Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	server.Shutdown(shutdownCtx)
}

// newOrderStore builds the configured order store. The returned cleanup
// closes any underlying connection.
func newOrderStore(ctx context.Context, cfg config.Config) (order.Store, func(), error) {
	switch cfg.OrderStore {
	case "postgres":
		db, err := order.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		store := order.NewPostgresStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Println("[API] Connected to PostgreSQL")
		return store, func() { db.Close() }, nil

	case "dynamo":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, nil, err
		}
		client := dynamodb.NewFromConfig(awsCfg)
		log.Printf("[API] Using DynamoDB table %s", cfg.DynamoOrdersTable)
		return order.NewDynamoStore(client, cfg.DynamoOrdersTable), func() {}, nil

	default:
		log.Println("[API] Using in-memory order store")
		return order.NewMemoryStore(), func() {}, nil
	}
}
