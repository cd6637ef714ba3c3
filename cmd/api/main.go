package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"adledger/internal/config"
	"adledger/internal/database"
	"adledger/internal/domain/account"
	"adledger/internal/domain/ads"
	"adledger/internal/domain/ledger"
	"adledger/internal/domain/referral"
	"adledger/internal/logging"
	"adledger/internal/middleware"
	jwtsvc "adledger/internal/pkg/jwt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment variables directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := db.AutoMigrate(ledger.Models()...); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	store := ledger.NewStore(db)

	referralService := referral.NewService(store, cfg.ReferralBonus, logger)
	adsService := ads.NewService(store, logger)
	accountService := account.NewService(store, referralService, cfg.BotUsername, logger)

	adsHandler := ads.NewHandler(adsService)
	accountHandler := account.NewHandler(accountService)

	j := jwtsvc.New(cfg.BotToken, cfg.TokenTTL)

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))

	v1 := r.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(middleware.GatewayAuth(j))
		{
			accountHandler.RegisterRoutes(protected)
			adsHandler.RegisterRoutes(protected)

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly(cfg.AdminID))
			{
				adsHandler.RegisterAdminRoutes(admin)
				accountHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Info("reward ledger listening", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
