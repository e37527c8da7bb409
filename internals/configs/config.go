package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	// Hosted environments inject the variables directly; .env is for local runs.
	if os.Getenv("APP_ENV") == "production" {
		log.Println("[CONFIG] production environment, using system ENV")
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Println("[CONFIG] no .env file found, using system ENV")
	} else {
		log.Println("[CONFIG] .env file loaded")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
