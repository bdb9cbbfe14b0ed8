package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Rahim00001/AuraStay-server/startup"
	"github.com/Rahim00001/AuraStay-server/startup/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.NewConfig()
	server := startup.NewServer(cfg)
	server.Start()
}
