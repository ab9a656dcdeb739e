package initializers

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			log.Println("No .env file found, relying on environment variables")
			return
		}
		log.Printf("Error loading .env file: %v", err)
	}
}
