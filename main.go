package main

import (
	"log"
	"strings"

	"api/config"
	"api/database"
	"api/middleware"
	v1 "api/routes/v1"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title CyberLearn API
// @description Gamified cybersecurity education platform: quiz, LBT points, leaderboard and marketplace
// @version 1.0
// @BasePath /api/v1
func main() {
	config.LoadConfig()
	database.InitDB()
	database.InitRedis()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(config.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	middleware.UpdateSystemMetrics()
	v1.Register(r)

	log.Printf("API listening on :%s", config.APIPort)
	if err := r.Run(":" + config.APIPort); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}
