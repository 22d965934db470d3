package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"NavidentClinic/config"
	"NavidentClinic/database"
	"NavidentClinic/routes"
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("Configuration error:", err)
	}

	if err := database.Connect(cfg.MongoURI, cfg.MongoDatabase); err != nil {
		log.Fatalln("Database error:", err)
	}
	defer database.Disconnect()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authService := routes.Routes(r, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := authService.EnsureAdminUser(ctx, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminEmail); err != nil {
		log.Fatalln("Admin bootstrap error:", err)
	}

	log.Println("Starting server on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalln("Server error:", err)
	}
}
