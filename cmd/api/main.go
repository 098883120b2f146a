package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"jugad/internal/analytics"
	"jugad/internal/config"
	"jugad/internal/database"
	"jugad/internal/domain/auth"
	"jugad/internal/domain/checkout"
	"jugad/internal/domain/pricing"
	"jugad/internal/domain/selection"
	"jugad/internal/domain/wallet"
	"jugad/internal/middleware"
	"jugad/internal/notification"
	jwtsvc "jugad/internal/pkg/jwt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&pricing.Plan{},
		&pricing.CreditPack{},
		&pricing.CreditActionCost{},
		&auth.User{},
		&wallet.CreditWallet{},
		&wallet.CreditTransaction{},
		&checkout.Order{},
	); err != nil {
		log.Fatal(err)
	}

	catalog, err := pricing.NewRepository(db).Load(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	hub := analytics.NewHub()
	events := analytics.NewMultiSink(analytics.NewLogSink(), hub)
	notifier := notification.NewLogNotifier()

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	pricingService := pricing.NewService(catalog, events)
	pricingHandler := pricing.NewHandler(pricingService)

	selectionService := selection.NewService(catalog, events)
	selectionHandler := selection.NewHandler(selectionService)

	walletService := wallet.NewService(db)
	walletHandler := wallet.NewHandler(walletService, catalog)

	authService := auth.NewService(db, j)
	authHandler := auth.NewHandler(authService, walletService)

	gateway := checkout.NewSimulatedGateway(cfg.CheckoutLatency)
	checkoutService := checkout.NewService(db, gateway, walletService, authService, events, notifier)
	checkoutHandler := checkout.NewHandler(checkoutService, selectionService)

	analyticsHandler := analytics.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		auth.RegisterRoutes(v1, authHandler)
		pricing.RegisterRoutes(v1, pricingHandler)
		selection.RegisterRoutes(v1, selectionHandler)
		analytics.RegisterRoutes(v1, analyticsHandler)

		// optional auth: browsing works anonymously, checkout checks for itself
		optional := v1.Group("/")
		optional.Use(middleware.OptionalAuth(j))
		{
			checkout.RegisterRoutes(optional, checkoutHandler)
		}

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			auth.RegisterProtectedRoutes(protected, authHandler)
			wallet.RegisterRoutes(protected, walletHandler)
		}
	}

	log.Printf("listening on %s (env=%s)", cfg.HTTPAddr, cfg.AppEnv)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
