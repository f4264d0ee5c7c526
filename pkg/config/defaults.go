package config

import "time"

const (
	DefaultMongoClusterHost = "cluster0.d8abmis.mongodb.net"
	DefaultMongoDatabase    = "carDoctor"
	DefaultMongoConnTimeout = 10 * time.Second
	DefaultMongoOpTimeout   = 10 * time.Second

	DefaultPort     = "5001"
	DefaultLogLevel = "info"

	DefaultTokenTTL = 1 * time.Hour

	DefaultCORSOrigin = "http://localhost:5173"

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultKafkaBookingTopic = "booking-events"
)
