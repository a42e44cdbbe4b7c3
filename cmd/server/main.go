package main

import (
	"fmt"
	"net/http"

	"heartrisk/auth"
	"heartrisk/config"
	"heartrisk/db"
	"heartrisk/db/mongo"
	"heartrisk/db/postgres"
	"heartrisk/handlers"
	"heartrisk/ml"
	"heartrisk/repository"
	"heartrisk/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var userRepo repository.UserRepository
	var predictionRepo repository.PredictionRepository

	switch cfg.DBType {
	case "postgres":
		// Run migrations (for Postgres)
		db.RunMigrations()

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		predictionRepo = repository.NewPostgresPredictionRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		userRepo = repository.NewMongoUserRepo(mg.Client)
		predictionRepo = repository.NewMongoPredictionRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	// Model and preprocessor are loaded once and shared read-only
	predictor, err := ml.LoadPredictor(cfg.ModelPath, cfg.PreprocessorPath)
	if err != nil {
		panic(err)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret)

	// Handlers
	authHandler := &handlers.AuthHandler{Repo: userRepo, Tokens: tokens}
	analyzeHandler := &handlers.AnalyzeHandler{Predictor: predictor, Repo: predictionRepo}
	historyHandler := &handlers.HistoryHandler{Repo: predictionRepo}

	// Report handler with combined repository
	reportRepo := &repository.ReportRepository{
		PredictionRepo: predictionRepo,
		UserRepo:       userRepo,
	}
	reportHandler := &handlers.ReportHandler{Repo: reportRepo, SavePath: cfg.ReportDir}

	// Setup routes including report export
	mux := routes.SetupRoutes(cfg.CORSOrigin, tokens, authHandler, analyzeHandler, historyHandler, reportHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		panic(err)
	}
}
