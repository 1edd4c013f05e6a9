package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"go-commerce/internal/orders/adapters"
	"go-commerce/internal/orders/application"
	"go-commerce/internal/orders/infrastructure"
	"go-commerce/internal/orders/ports"
	"go-commerce/pkg/config"
	"go-commerce/pkg/db"
	"go-commerce/pkg/events"
	"go-commerce/pkg/logger"
	"go-commerce/pkg/middleware"
	"go-commerce/pkg/rabbitmq"
	tlspkg "go-commerce/pkg/tls"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log := logger.New(cfg.ServiceName, cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	log.Info("starting orders service")

	// Connect to database
	dbConn, err := db.NewConnection(db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
		Timeout:  cfg.DBTimeout,
	})
	if err != nil {
		log.Fatal("failed to connect to database: " + err.Error())
	}
	log.Info("connected to database")

	// Initialize repository and run migrations
	repo := adapters.NewPostgresOrderRepository(dbConn)
	if err := repo.Migrate(); err != nil {
		log.Fatal("failed to migrate database: " + err.Error())
	}

	// Connect to RabbitMQ
	var publisher ports.EventPublisher
	rabbitConn, err := rabbitmq.NewConnection(cfg.RabbitMQURL, log)
	if err != nil {
		log.Warn("failed to connect to RabbitMQ, events will be disabled: " + err.Error())
	} else {
		defer rabbitConn.Close()

		pub, err := rabbitmq.NewPublisher(rabbitConn, events.ExchangeOrders, log)
		if err != nil {
			log.Warn("failed to create publisher: " + err.Error())
		} else {
			publisher = adapters.NewRabbitMQPublisher(pub, log)
		}
	}

	// Payment gateway: the fake adapter stands in until a real PSP
	// integration lands.
	gateway := adapters.NewFakePaymentGateway()

	// Initialize use case
	useCase := application.NewOrderUseCase(repo, gateway, publisher, log)

	// Start HTTP server
	httpHandler := infrastructure.NewHTTPHandler(useCase)
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.TraceID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.CORS())

	api := router.Group("/api/v1")
	httpHandler.RegisterRoutes(api)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	httpServer := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
	}

	if cfg.TLSEnabled {
		tlsConfig, err := tlspkg.ServerConfig(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			log.Fatal("failed to load TLS config: " + err.Error())
		}
		httpServer.TLSConfig = tlsConfig
	}

	go func() {
		log.Info("HTTP server listening on :" + cfg.HTTPPort)
		var err error
		if cfg.TLSEnabled {
			err = httpServer.ListenAndServeTLS("", "")
		} else {
			err = httpServer.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error: " + err.Error())
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP shutdown error: " + err.Error())
	}

	log.Info("server stopped")
}
