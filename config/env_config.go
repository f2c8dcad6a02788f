package config

import (
	"os"
	"strconv"
)

type EnvConfig struct {
	Postgres struct {
		Host     string
		Database string
		Username string
		Password string
		Port     string
	}
	JWT struct {
		AccessSecret  string
		RefreshSecret string
		AccessExpire  int // seconds
		RefreshExpire int // seconds
	}
	CORS struct {
		AllowOrigins string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		Database int
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Endpoint  string
		AccessKey string
		SecretKey string
		Bucket    string
		UseSSL    bool
		PublicURL string
	}
	Telemetry struct {
		OTLPEndpoint string
		ServiceName  string
	}
	Server struct {
		Port string
	}
	Environment struct {
		Mode string
	}
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	// Postgres
	config.Postgres.Host = os.Getenv("POSTGRES_HOST")
	config.Postgres.Database = os.Getenv("POSTGRES_DB")
	config.Postgres.Username = os.Getenv("POSTGRES_USER")
	config.Postgres.Password = os.Getenv("POSTGRES_PASSWORD")
	config.Postgres.Port = os.Getenv("POSTGRES_PORT")
	if config.Postgres.Port == "" {
		config.Postgres.Port = "5432"
	}

	// JWT
	config.JWT.AccessSecret = os.Getenv("ACCESS_TOKEN_SECRET")
	config.JWT.RefreshSecret = os.Getenv("REFRESH_TOKEN_SECRET")

	if val, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_EXPIRE")); err == nil && val > 0 {
		config.JWT.AccessExpire = val
	} else {
		config.JWT.AccessExpire = 3600 * 24 // 1 day
	}
	if val, err := strconv.Atoi(os.Getenv("REFRESH_TOKEN_EXPIRE")); err == nil && val > 0 {
		config.JWT.RefreshExpire = val
	} else {
		config.JWT.RefreshExpire = 3600 * 24 * 10 // 10 days
	}

	config.CORS.AllowOrigins = os.Getenv("CORS_ORIGIN")
	if config.CORS.AllowOrigins == "" {
		config.CORS.AllowOrigins = "http://localhost:3000"
	}

	// Redis
	config.Redis.Host = os.Getenv("REDIS_HOST")
	if config.Redis.Host == "" {
		config.Redis.Host = "localhost"
	}
	config.Redis.Port = os.Getenv("REDIS_PORT")
	if config.Redis.Port == "" {
		config.Redis.Port = "6379"
	}
	config.Redis.Password = os.Getenv("REDIS_PASSWORD")
	config.Redis.Database, _ = strconv.Atoi(os.Getenv("REDIS_DB"))

	// RabbitMQ
	config.RabbitMQ.Host = os.Getenv("RABBITMQ_HOST")
	if config.RabbitMQ.Host == "" {
		config.RabbitMQ.Host = "localhost"
	}
	config.RabbitMQ.Port = os.Getenv("RABBITMQ_PORT")
	if config.RabbitMQ.Port == "" {
		config.RabbitMQ.Port = "5672"
	}
	config.RabbitMQ.Username = os.Getenv("RABBITMQ_USER")
	if config.RabbitMQ.Username == "" {
		config.RabbitMQ.Username = "guest"
	}
	config.RabbitMQ.Password = os.Getenv("RABBITMQ_PASSWORD")
	if config.RabbitMQ.Password == "" {
		config.RabbitMQ.Password = "guest"
	}

	// MinIO
	config.Minio.Endpoint = os.Getenv("MINIO_ENDPOINT")
	config.Minio.AccessKey = os.Getenv("MINIO_ACCESS_KEY")
	config.Minio.SecretKey = os.Getenv("MINIO_SECRET_KEY")
	config.Minio.Bucket = os.Getenv("MINIO_BUCKET")
	if config.Minio.Bucket == "" {
		config.Minio.Bucket = "video-motion"
	}
	config.Minio.UseSSL, _ = strconv.ParseBool(os.Getenv("MINIO_USE_SSL"))
	config.Minio.PublicURL = os.Getenv("MINIO_PUBLIC_URL")
	if config.Minio.PublicURL == "" {
		scheme := "http"
		if config.Minio.UseSSL {
			scheme = "https"
		}
		config.Minio.PublicURL = scheme + "://" + config.Minio.Endpoint
	}

	// Telemetry
	config.Telemetry.OTLPEndpoint = os.Getenv("OTLP_ENDPOINT")
	config.Telemetry.ServiceName = os.Getenv("SERVICE_NAME")
	if config.Telemetry.ServiceName == "" {
		config.Telemetry.ServiceName = "video-motion-api"
	}

	config.Server.Port = os.Getenv("PORT")
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}

	config.Environment.Mode = os.Getenv("DEPLOY_ENV")
	if config.Environment.Mode == "" {
		config.Environment.Mode = "development"
	}

	return &config
}
