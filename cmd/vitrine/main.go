package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vitrine-app/vitrine/internal/pkg/config"
	"github.com/vitrine-app/vitrine/internal/pkg/database"
	"github.com/vitrine-app/vitrine/internal/pkg/health"
	"github.com/vitrine-app/vitrine/internal/pkg/logger"
	"github.com/vitrine-app/vitrine/internal/pkg/middleware"
	natspkg "github.com/vitrine-app/vitrine/internal/pkg/nats"
	nrpkg "github.com/vitrine-app/vitrine/internal/pkg/newrelic"
	"github.com/vitrine-app/vitrine/internal/pkg/server"
	campaignGateway "github.com/vitrine-app/vitrine/services/campaign/gateway"
	campaignHandler "github.com/vitrine-app/vitrine/services/campaign/handler"
	campaignHTTP "github.com/vitrine-app/vitrine/services/campaign/handler/http"
	campaignRepository "github.com/vitrine-app/vitrine/services/campaign/repository"
	campaignUsecase "github.com/vitrine-app/vitrine/services/campaign/usecase"
	paymentGateway "github.com/vitrine-app/vitrine/services/payment/gateway"
	paymentHandler "github.com/vitrine-app/vitrine/services/payment/handler"
	paymentHTTP "github.com/vitrine-app/vitrine/services/payment/handler/http"
	paymentRepository "github.com/vitrine-app/vitrine/services/payment/repository"
	paymentUsecase "github.com/vitrine-app/vitrine/services/payment/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "vitrine-api"
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", "config/vitrine.env"))

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{
		Level:    config.GetEnv("LOG_LEVEL", "info"),
		FilePath: config.GetEnv("LOG_FILE", ""),
		AppName:  appName,
	}, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// payment service wiring
	paymentRepo := paymentRepository.NewPaymentRepo(configs, postgresClient.GetDB(), redisClient)
	chargerGW := paymentGateway.NewChargerGW(configs)
	paymentGW := paymentGateway.NewPaymentGW(natsClient)
	paymentUC := paymentUsecase.NewPaymentUC(configs, paymentRepo, chargerGW, paymentGW)

	// campaign service wiring; the payment usecase doubles as the campaign
	// side's settlement boundary
	campaignRepo := campaignRepository.NewCampaignRepo(configs, postgresClient.GetDB())
	campaignGW := campaignGateway.NewCampaignGW(natsClient)
	participationUC := campaignUsecase.NewParticipationUC(configs, campaignRepo, campaignGW, paymentUC)

	participationH := campaignHTTP.NewParticipationHandler(participationUC)
	platformH := campaignHTTP.NewPlatformHandler()
	campaignH := campaignHandler.NewHandler(participationH, platformH, configs)

	paymentH := paymentHandler.NewHandler(paymentHTTP.NewPaymentHandler(paymentUC), configs)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	campaignH.RegisterRoutes(e)
	paymentH.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", zap.Error(err))
	}
}
