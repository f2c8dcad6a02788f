package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/videomotion/video-motion-api/config"
	"github.com/videomotion/video-motion-api/controller"
	infraPkg "github.com/videomotion/video-motion-api/infra"
	"github.com/videomotion/video-motion-api/repository"
	routes "github.com/videomotion/video-motion-api/route"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)
	repo := repository.InitRepository(infra)

	ctrl := controller.NewController(cfg, infra, repo)

	router := routes.SetupRouter(ctrl)
	if err := router.Run(":" + cfg.EnvConfig.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
