package infra

import (
	"fmt"
	"log"

	"github.com/videomotion/video-motion-api/config"
	"github.com/videomotion/video-motion-api/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PostgresClient struct {
	DB *gorm.DB
}

func InitPostgresClient(cfg *config.EnvConfig) *PostgresClient {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Postgres.Host,
		cfg.Postgres.Username,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Postgres: %v", err))
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Video{},
		&entity.Comment{},
		&entity.Tweet{},
		&entity.Like{},
		&entity.Playlist{},
		&entity.PlaylistVideo{},
		&entity.Subscription{},
		&entity.WatchHistory{},
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to migrate database schema: %v", err))
	}

	log.Println("Connected to Postgres:", cfg.Postgres.Host+":"+cfg.Postgres.Port)

	return &PostgresClient{DB: db}
}

// Ping verifies the underlying connection, used by the healthcheck.
func (p *PostgresClient) Ping() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
