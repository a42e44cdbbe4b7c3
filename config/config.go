package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL      string
	MongoURL         string
	DBType           string
	Port             string
	JWTSecret        string
	ModelPath        string
	PreprocessorPath string
	CORSOrigin       string
	ReportDir        string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL:      os.Getenv("POSTGRES_URL"),
		MongoURL:         os.Getenv("MONGO_URL"),
		DBType:           os.Getenv("DB_TYPE"),
		Port:             os.Getenv("PORT"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		ModelPath:        os.Getenv("MODEL_PATH"),
		PreprocessorPath: os.Getenv("PREPROCESSOR_PATH"),
		CORSOrigin:       os.Getenv("CORS_ORIGIN"),
		ReportDir:        os.Getenv("REPORT_DIR"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.ModelPath == "" {
		cfg.ModelPath = "artifacts/nn_model.json"
	}
	if cfg.PreprocessorPath == "" {
		cfg.PreprocessorPath = "artifacts/preprocessor.json"
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = "./reports"
	}
	return cfg
}
