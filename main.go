// File: movebook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movebook/config"
	"movebook/cron"
	"movebook/database"
	overrideRepo "movebook/database/repository/availability"
	bookingRepoPkg "movebook/database/repository/booking"
	companyRepoPkg "movebook/database/repository/company"
	couponRepoPkg "movebook/database/repository/coupon"
	eventRepoPkg "movebook/database/repository/event"
	pricingRepoPkg "movebook/database/repository/pricing"
	"movebook/handlers"
	"movebook/routes"
	"movebook/services/availability"
	"movebook/services/booking"
	"movebook/services/coupon"
	"movebook/services/estimate"
	"movebook/services/events"
	"movebook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitKafkaProducer()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	companyRepo := companyRepoPkg.NewMongoCompanyRepo()
	pricingRepo := pricingRepoPkg.NewMongoPricingRuleRepo()
	couponRepo := couponRepoPkg.NewMongoCouponRepo()
	availOverrideRepo := overrideRepo.NewMongoOverrideRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	eventRepo := eventRepoPkg.NewMongoEventRepo()

	// services.
	couponService := &coupon.DefaultCouponService{
		Repo: couponRepo,
	}
	estimateService := &estimate.DefaultEstimateService{
		CompanyRepo: companyRepo,
		PricingRepo: pricingRepo,
		CouponSvc:   couponService,
	}
	availabilityService := &availability.DefaultAvailabilityService{
		CompanyRepo:  companyRepo,
		OverrideRepo: availOverrideRepo,
		BookingRepo:  bookingRepo,
	}
	eventService := &events.DefaultEventService{
		Repo:     eventRepo,
		Producer: utils.GetEventsProducer(),
	}
	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		Availability: availabilityService,
		EstimateSvc:  estimateService,
		EventsSvc:    eventService,
		Queue:        utils.GetQueueClient(),
	}

	widgetHandler := handlers.NewWidgetHandler(
		companyRepo, pricingRepo,
		estimateService, couponService, availabilityService, bookingService, eventService,
		utils.GetCacheClient(),
	)
	companyHandler := handlers.NewCompanyHandler(
		companyRepo, pricingRepo, couponRepo, availOverrideRepo, bookingRepo,
	)

	routes.RegisterRoutes(router, widgetHandler, companyHandler)

	// Background worker applying coupon usage increments.
	cron.InitCouponUsageWorker(couponRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	utils.CloseKafkaProducer()

	logger.Sugar().Info("main: server stopped gracefully")
}
