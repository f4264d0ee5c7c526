package main

import (
	authhandler "cardoctor/internal/auth/handler"
	"cardoctor/internal/auth/token"
	bookinghandler "cardoctor/internal/bookings/handler"
	bookingrepo "cardoctor/internal/bookings/repository"
	bookingsvc "cardoctor/internal/bookings/service"
	cataloghandler "cardoctor/internal/catalog/handler"
	catalogrepo "cardoctor/internal/catalog/repository"
	catalogsvc "cardoctor/internal/catalog/service"
	healthhandler "cardoctor/internal/health/handler"
	"cardoctor/pkg/app"
	"cardoctor/pkg/client"
	"cardoctor/pkg/config"
	"cardoctor/pkg/events"
	"cardoctor/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

const ServiceName = "car-doctor"

func main() {
	cfg := config.Load(ServiceName)

	mongo := client.NewMongoClient(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)

	var publisher events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		var err error
		publisher, err = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaBookingTopic, cfg.Log)
		if err != nil {
			cfg.Log.Fatal("Failed to create event publisher", "error", err)
		}
		cfg.Log.Info("Booking event publisher enabled", "topic", cfg.KafkaBookingTopic)
	}

	tokens := token.NewService(cfg.AccessSecret, cfg.TokenTTL)

	catalogService := catalogsvc.NewCatalogService(
		catalogrepo.NewMongoServiceRepository(mongo, cfg.MongoDatabaseName, cfg.MongoOpTimeout),
		cfg.Log,
	)
	bookingService := bookingsvc.NewBookingService(
		bookingrepo.NewMongoBookingRepository(mongo, cfg.MongoDatabaseName, cfg.MongoOpTimeout),
		publisher,
		cfg.Log,
	)

	accessLog := middleware.AccessLog(cfg.Log)
	gate := middleware.RequireToken(tokens, cfg.Log)

	router := httprouter.New()
	authhandler.NewAuthHandler(tokens, cfg.Log).RegisterRoutes(router)
	cataloghandler.NewServiceHandler(catalogService, cfg.Log).RegisterRoutes(router, accessLog)
	bookinghandler.NewBookingHandler(bookingService, cfg.Log).RegisterRoutes(router, accessLog, gate)
	healthhandler.NewHealthHandler(mongo, cfg.Log).RegisterRoutes(router)

	serverApp := app.NewApplication(cfg, mongo, publisher)
	serverApp.SetServer(router)
	serverApp.Run()
}
