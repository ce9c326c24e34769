package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/jakkritp/staybooking/internal/adapter/handler"
	pgrepo "github.com/jakkritp/staybooking/internal/adapter/repository/postgres"
	"github.com/jakkritp/staybooking/internal/adapter/storage"
	"github.com/jakkritp/staybooking/internal/core/services"
	"github.com/jakkritp/staybooking/internal/platform/database"
	"github.com/jakkritp/staybooking/internal/platform/logger"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Info("no .env file found, using OS environment")
	}

	dbConfig := database.Config{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "postgres"),
		Password: getenv("DB_PASSWORD", ""),
		DBName:   getenv("DB_NAME", "staybooking"),
	}

	db, err := database.NewPostgresDB(dbConfig)
	if err != nil {
		logger.Log.Error("failed to connect to db after retries", "error", err)
		os.Exit(1)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		logger.Log.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	redisAddr := fmt.Sprintf("%s:%s", getenv("REDIS_HOST", "localhost"), getenv("REDIS_PORT", "6379"))
	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr, DB: 0})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Log.Error("failed to connect to redis", "addr", redisAddr, "error", err)
		os.Exit(1)
	}
	logger.Log.Info("redis connected", "addr", redisAddr)

	slipStorage, err := storage.NewCloudinaryStorage(storage.Config{
		CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		Folder:    os.Getenv("CLOUDINARY_FOLDER"),
	})
	if err != nil {
		logger.Log.Error("slip storage is not configured", "error", err)
		os.Exit(1)
	}

	placeRepo := pgrepo.NewPlaceRepository(db)
	roomRepo := pgrepo.NewRoomRepository(db)
	bookingRepo := pgrepo.NewBookingRepository(db)

	availabilitySvc := services.NewAvailabilityService(placeRepo, roomRepo, bookingRepo)
	bookingSvc := services.NewBookingService(roomRepo, bookingRepo)
	paymentSvc := services.NewPaymentService(bookingRepo, slipStorage)
	roomSvc := services.NewRoomService(placeRepo, roomRepo, redisClient)

	availabilityHandler := handler.NewAvailabilityHandler(availabilitySvc)
	bookingHandler := handler.NewBookingHandler(bookingSvc)
	paymentHandler := handler.NewPaymentHandler(paymentSvc, os.Getenv("GATEWAY_WEBHOOK_TOKEN"))
	roomHandler := handler.NewRoomHandler(roomSvc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	// The gateway authenticates with a shared token, not a user JWT.
	e.POST("/webhooks/payment-gateway", paymentHandler.GatewayCallback)

	api := e.Group("/api/v1")
	api.Use(handler.JWTAuth([]byte(getenv("ACCESS_TOKEN_SECRET", "dev-secret"))))

	api.GET("/places/:placeID", roomHandler.GetPlace)
	api.GET("/places/:placeID/rooms", roomHandler.ListRooms)
	api.GET("/places/:placeID/availability", availabilityHandler.GetPlaceAvailability)
	api.GET("/places/:placeID/rooms/:roomID/availability", availabilityHandler.GetRoomAvailability)
	api.GET("/places/:placeID/payment-info", roomHandler.GetPaymentInfo)

	api.POST("/bookings", bookingHandler.CreateBooking)
	api.GET("/bookings/:bookingID", bookingHandler.GetBooking)
	api.POST("/bookings/:bookingID/cancel", bookingHandler.CancelBooking)
	api.POST("/bookings/:bookingID/slip", paymentHandler.UploadSlip)
	api.GET("/users/me/bookings", bookingHandler.ListMyBookings)

	host := api.Group("", handler.RequireRole(handler.RoleHost))
	host.POST("/places", roomHandler.CreatePlace)
	host.POST("/places/:placeID/rooms", roomHandler.AddRoom)
	host.DELETE("/rooms/:roomID", roomHandler.DeleteRoom)
	host.PUT("/rooms/:roomID/occupied", roomHandler.SetOccupied)
	host.PUT("/places/:placeID/payment-info", roomHandler.SetPaymentInfo)

	admin := api.Group("", handler.RequireRole(handler.RoleAdmin))
	admin.POST("/bookings/:bookingID/payment", paymentHandler.DecidePayment)

	addr := ":" + getenv("PORT", "8080")

	go func() {
		logger.Log.Info("server starting", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("server startup failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Log.Info("server exiting")
}
