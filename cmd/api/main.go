package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	razorpay "github.com/razorpay/razorpay-go"

	"stayelo/internal/config"
	"stayelo/internal/database"
	"stayelo/internal/middleware"
	"stayelo/internal/modules/admin"
	"stayelo/internal/modules/auth"
	"stayelo/internal/modules/booking"
	"stayelo/internal/modules/catalog"
	"stayelo/internal/modules/chat"
	"stayelo/internal/modules/payment"
	"stayelo/internal/notification"
	jwtsvc "stayelo/internal/pkg/jwt"
	"stayelo/internal/repository"
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
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	chatRepo := repository.NewChatRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(roomRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, roomRepo)
	bookingHandler := booking.NewHandler(bookingService)

	var notifier notification.Notifier
	if cfg.SMTPUser != "" {
		notifier = notification.NewEmailNotifier(
			cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom,
			log.Printf,
		)
	} else {
		log.Println("EMAIL_USER is empty, confirmation emails disabled")
	}

	var orders interface {
		Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
	}
	if cfg.RazorpayKeyID != "" && cfg.RazorpayKeySecret != "" {
		orders = razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret).Order
	} else {
		log.Println("Razorpay credentials are empty, order creation disabled")
	}

	paymentService := payment.NewService(
		bookingRepo, roomRepo, userRepo, notifier, orders,
		cfg.RazorpayKeySecret, log.Printf,
	)
	paymentHandler := payment.NewHandler(paymentService)

	adminService := admin.NewService(bookingRepo)
	adminHandler := admin.NewHandler(adminService)

	hub := chat.NewHub()
	defer hub.Close()
	chatHandler := chat.NewHandler(hub, j, chatRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	chatHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)

		// authenticated
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
		}

		// admin
		adminOnly := v1.Group("/")
		adminOnly.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			bookingHandler.RegisterAdminRoutes(adminOnly)
			catalogHandler.RegisterAdminRoutes(adminOnly)
			adminHandler.RegisterRoutes(adminOnly)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
