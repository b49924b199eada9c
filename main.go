package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MAyankprine20001/Penta-Cabs/config"
	"github.com/MAyankprine20001/Penta-Cabs/controllers"
	"github.com/MAyankprine20001/Penta-Cabs/database"
	"github.com/MAyankprine20001/Penta-Cabs/logger"
	"github.com/MAyankprine20001/Penta-Cabs/repository"
	"github.com/MAyankprine20001/Penta-Cabs/routes"
	"github.com/MAyankprine20001/Penta-Cabs/sender"
	"github.com/MAyankprine20001/Penta-Cabs/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("Failed to load config", zap.Error(err))
	}

	logger.Initialize(cfg.Env)
	defer zap.L().Sync()

	if err := database.Connect(cfg.MongoURI, cfg.MongoDB); err != nil {
		zap.L().Fatal("Database connection failed", zap.Error(err))
	}
	defer database.Close()

	cache := services.NewAvailabilityCache(nil)
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			zap.L().Warn("Redis connection failed, availability caching disabled", zap.Error(err))
		} else {
			cache = services.NewAvailabilityCache(redisClient)
			defer redisClient.Close()
		}
	}

	airportRepo := repository.NewMongoAirportRepo(database.DB)
	localRepo := repository.NewMongoLocalRepo(database.DB)
	outstationRepo := repository.NewMongoOutstationRepo(database.DB)
	bookingRepo := repository.NewMongoBookingRepo(database.DB)
	blogRepo := repository.NewMongoBlogRepo(database.DB)
	seoRepo := repository.NewMongoSEORepo(database.DB)

	mailer := services.NewMailer(sender.NewSMTPSender(
		cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, cfg.EmailUser))

	payments := services.NewPaymentService(
		services.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
		cfg.RazorpayKeySecret, cfg.Currency)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(logger.RequestLogger(zap.L()))
	r.Use(logger.RequestTimeout(30 * time.Second))

	routes.Register(r, routes.Controllers{
		Airport:    controllers.NewAirportController(airportRepo, mailer, cache),
		Local:      controllers.NewLocalController(localRepo, mailer, cache),
		Outstation: controllers.NewOutstationController(outstationRepo, mailer, cache),
		Booking:    controllers.NewBookingController(bookingRepo, mailer),
		Blog:       controllers.NewBlogController(blogRepo),
		SEO:        controllers.NewSEOController(seoRepo),
		Payment:    controllers.NewPaymentController(payments),
		Meta:       controllers.NewMetaController(),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Server started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}
	zap.L().Info("Server exited cleanly")
}
