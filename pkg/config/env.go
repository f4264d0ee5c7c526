package config

const (
	EnvDBUser           = "DB_USER"
	EnvDBPass           = "DB_PASS"
	EnvMongoURI         = "MONGO_URI"
	EnvMongoClusterHost = "MONGO_CLUSTER_HOST"
	EnvMongoDatabase    = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout = "MONGO_CONN_TIMEOUT"
	EnvMongoOpTimeout   = "MONGO_OP_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvAccessSecret = "ACCESS_SECRET_TOKEN"
	EnvTokenTTL     = "TOKEN_TTL"

	EnvCORSOrigin = "CORS_ORIGIN"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvKafkaBrokers      = "KAFKA_BROKERS"
	EnvKafkaBookingTopic = "KAFKA_BOOKING_TOPIC"
)
