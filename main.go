package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"carpool-backend/bootstrap"
	"carpool-backend/config"
	"carpool-backend/database"
	"carpool-backend/internal/controllers"
	"carpool-backend/internal/middleware"
	"carpool-backend/internal/payments"
	"carpool-backend/internal/repository"
	"carpool-backend/internal/routes"
	"carpool-backend/internal/services"
	"carpool-backend/logging"
)

func main() {
	cfg := config.LoadConfig()

	log := logging.New(cfg.Env)
	defer log.Sync()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal("mongodb connection failed", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB)
	log.Info("connected to mongodb", zap.String("database", cfg.MongoDB))

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatal("ensure indexes failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepo(db)
	carpoolRepo := repository.NewCarpoolRepo(db)
	requestRepo := repository.NewRequestRepo(db)
	feedbackRepo := repository.NewFeedbackRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)
	chatRepo := repository.NewChatRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	preferencesRepo := repository.NewPreferencesRepo(db)
	verificationRepo := repository.NewVerificationRepo(db)

	if err := bootstrap.SeedAdmin(context.Background(), userRepo, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("admin seeding failed", zap.Error(err))
	}

	notifier := &services.NotificationSender{Repo: notificationRepo}
	carpoolService := &services.CarpoolService{Carpools: carpoolRepo, Requests: requestRepo, Notify: notifier}
	paymentService := &services.PaymentService{
		Store:   paymentRepo,
		Gateway: payments.NewStripeGateway(cfg.StripeKey),
		Notify:  notifier,
	}
	feedbackService := &services.FeedbackService{Store: feedbackRepo}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(log),
	})

	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigin,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(compress.New())
	if cfg.IsDevelopment() {
		app.Use(logger.New())
	}
	app.Use(middleware.RequestLogger(log))
	app.Use(middleware.Metrics())
	app.Use(recover.New())

	routes.RegisterHealth(app)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	routes.RegisterAuth(app, &controllers.AuthController{Users: userRepo, Secret: cfg.JWTSecret})

	app.Use(middleware.RequireAuth(cfg.JWTSecret))

	routes.Register(app, routes.Controllers{
		Carpools:      &controllers.CarpoolController{Carpools: carpoolRepo, Requests: requestRepo, Service: carpoolService},
		Requests:      &controllers.RequestController{Requests: requestRepo, Service: carpoolService},
		Payments:      &controllers.PaymentController{Service: paymentService},
		Profile:       &controllers.ProfileController{Users: userRepo},
		Feedback:      &controllers.FeedbackController{Service: feedbackService},
		Notifications: &controllers.NotificationController{Notifications: notificationRepo},
		Chats:         &controllers.ChatController{Chats: chatRepo},
		Preferences:   &controllers.PreferencesController{Preferences: preferencesRepo},
		Verifications: &controllers.VerificationController{Verifications: verificationRepo, Users: userRepo, Notify: notifier},
	}, userRepo)

	log.Info("listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
