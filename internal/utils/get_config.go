package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort string `yaml:"APP_PORT"`
	AppEnv  string `yaml:"APP_ENV"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Expiration sweep schedule (cron expression)
	SweepSchedule string `yaml:"SWEEP_SCHEDULE"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Keys that should also be reachable via os.Getenv
	os.Setenv("JWT_SECRET", config.JWTSecret)
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_ENV":
		return config.AppEnv
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "SWEEP_SCHEDULE":
		return config.SweepSchedule
	default:
		return ""
	}
}
