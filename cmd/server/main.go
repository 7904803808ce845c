// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/unclebandit/leadplan-backend/internal/controller"
	"github.com/unclebandit/leadplan-backend/internal/db"
	"github.com/unclebandit/leadplan-backend/internal/events"
	"github.com/unclebandit/leadplan-backend/internal/llm"
	"github.com/unclebandit/leadplan-backend/internal/logger"
	"github.com/unclebandit/leadplan-backend/internal/repository"
	"github.com/unclebandit/leadplan-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	logg := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	defer logg.Sync()

	// The single credential that gates the LLM path. Absent → every request
	// takes the fallback synthesizer.
	var generator llm.TextGenerator
	modelID := os.Getenv("GEMINI_MODEL")
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		gemini := llm.NewGemini(key, modelID)
		modelID = gemini.Model
		generator = gemini
		logg.Info("model path enabled", zap.String("model", modelID))
	} else {
		logg.Warn("GEMINI_API_KEY not set, all plans will use the fallback synthesizer")
	}

	// Optional audit trail
	var auditRepo repository.GenerationLogRepositoryInterface
	conn, err := db.Open()
	if err != nil {
		logg.Warn("audit database unavailable, continuing without audit trail", zap.Error(err))
	} else if conn != nil {
		auditRepo = &repository.GenerationLogRepository{DB: conn}
	}

	// Optional event publishing
	var publisher events.Publisher
	if url := os.Getenv("AMQP_URL"); url != "" {
		publisher = &events.AMQPPublisher{URL: url}
	}

	planService := &service.PlanService{
		Generator: generator,
		Model:     modelID,
		AuditRepo: auditRepo,
		Events:    publisher,
		Logger:    logg,
	}

	planController := &controller.PlanController{
		PlanService: planService,
	}

	r := chi.NewRouter()

	r.Post("/api/plans", planController.GeneratePlan)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logg.Info("🚀 server running", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logg.Fatal("server stopped", zap.Error(err))
	}
}
