package database

import (
	"context"
	"fmt"
	"log"

	"api/config"
	"api/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB
var REDIS *redis.Client

// InitDB initializes the database connection, migrates the models and seeds
// the quiz question catalog if needed
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=UTC",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.QuizResult{},
		&models.Listing{},
		&models.Transaction{},
	)
	if err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	Populate()
}

// InitRedis initializes the Redis client used for session and leaderboard caching
func InitRedis() {
	REDIS = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress,
		Password: config.RedisPassword,
	})

	if err := REDIS.Ping(context.Background()).Err(); err != nil {
		log.Fatal("failed to connect redis: ", err)
	}
}

// Populate seeds the static question catalog. Questions are presented to
// every attempt in catalog (position) order, so the seed order is the quiz
// order.
func Populate() {
	var countQuestions int64
	DB.Model(&models.Question{}).Count(&countQuestions)
	if countQuestions > 0 {
		return
	}

	for _, question := range QuestionCatalog {
		if err := DB.Create(&question).Error; err != nil {
			log.Fatal("failed to seed question catalog: ", err)
		}
	}
	log.Printf("Question catalog seeded with %d questions", len(QuestionCatalog))
}
