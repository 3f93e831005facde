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

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/maisonlumiere/boutique/internal/config"
	"github.com/maisonlumiere/boutique/internal/es"
	"github.com/maisonlumiere/boutique/internal/handlers"
	"github.com/maisonlumiere/boutique/internal/logging"
	"github.com/maisonlumiere/boutique/internal/metrics"
	loggingmw "github.com/maisonlumiere/boutique/internal/middleware/logging"
	"github.com/maisonlumiere/boutique/internal/mykafka"
	"github.com/maisonlumiere/boutique/internal/storage"
	httpserver "github.com/maisonlumiere/boutique/internal/transport/http"
)

const productIndex = "products"

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	var (
		store storage.Store
		db    *gorm.DB
	)
	switch configuration.STORE_BACKEND {
	case "postgres":
		db, err = config.InitDB(configuration)
		if err != nil {
			log.Fatalf("db init error: %v", err)
		}
		gs := storage.NewGormStore(db)
		if err := gs.AutoMigrate(); err != nil {
			log.Fatalf("db migrate error: %v", err)
		}
		store = gs
	default:
		store = storage.NewMemoryStore()
	}

	if configuration.SEED != "false" {
		if err := storage.Seed(context.Background(), store); err != nil {
			log.Fatalf("seed error: %v", err)
		}
	}

	var prod *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		prod, err = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
		if err != nil {
			log.Fatal(err)
		}
	}

	var esClient *elasticsearch.Client
	if configuration.ES_URL != "" {
		esClient, err = es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(metrics.Middleware())

	deps := httpserver.Deps{
		ProductHandler:   &handlers.ProductHandler{Store: store, Producer: prod, ES: esClient, Index: productIndex},
		OrderHandler:     &handlers.OrderHandler{Store: store, Producer: prod},
		BlogHandler:      &handlers.BlogHandler{Store: store, Producer: prod},
		CartHandler:      &handlers.CartHandler{Store: store, Producer: prod},
		SearchHandler:    &handlers.SearchHandler{Store: store, ES: esClient, Index: productIndex},
		DashboardHandler: &handlers.DashboardHandler{Store: store},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("db close error: %v", err)
			}
		} else {
			log.Printf("db() error: %v", err)
		}
	}

	if prod != nil {
		if err := prod.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}
