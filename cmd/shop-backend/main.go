package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/shop-backend/internal/auth"
	"github.com/vasiliy-maslov/shop-backend/internal/category"
	"github.com/vasiliy-maslov/shop-backend/internal/config"
	"github.com/vasiliy-maslov/shop-backend/internal/db"
	httpHandler "github.com/vasiliy-maslov/shop-backend/internal/handler/http"
	"github.com/vasiliy-maslov/shop-backend/internal/order"
	"github.com/vasiliy-maslov/shop-backend/internal/product"
	"github.com/vasiliy-maslov/shop-backend/internal/user"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	log.Info().Msg("Starting shop-backend...")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	ctx := context.Background()

	mongo, err := db.New(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	err = mongo.EnsureCollections(ctx,
		db.UsersCollection,
		db.ProductsCollection,
		db.CategoriesCollection,
		db.OrdersCollection,
		db.StatusesCollection,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure collections")
	}

	userRepo := user.NewRepository(mongo.Database.Collection(db.UsersCollection))
	categoryRepo := category.NewRepository(mongo.Database.Collection(db.CategoriesCollection))
	productRepo := product.NewRepository(mongo.Database.Collection(db.ProductsCollection))
	orderRepo := order.NewRepository(mongo.Database.Collection(db.OrdersCollection))
	statusRepo := order.NewStatusRepository(mongo.Database.Collection(db.StatusesCollection))

	if err := statusRepo.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed statuses")
	}
	if err := categoryRepo.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed categories")
	}

	tokenManager := auth.NewTokenManager(cfg.JWT)
	authSvc := auth.NewService(userRepo, tokenManager)
	productSvc := product.NewService(productRepo, categoryRepo)
	orderSvc := order.NewService(orderRepo, statusRepo, productRepo)

	authHandler := httpHandler.NewAuthHandler(authSvc)
	productHandler := httpHandler.NewProductHandler(productSvc, categoryRepo)
	orderHandler := httpHandler.NewOrderHandler(orderSvc)

	router := httpHandler.NewRouter(authHandler, productHandler, orderHandler, authSvc)

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Str("port", cfg.App.Port).Msg("Could not listen")
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)
	<-stopCh

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown failed")
	}

	mongo.Close(shutdownCtx)

	log.Info().Msg("Shop-backend stopped gracefully.")
}
