package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"leadpro/internal/infra/database"
	"leadpro/internal/infra/http/handlers"
	"leadpro/internal/infra/http/middleware"
	"leadpro/internal/infra/media"
	"leadpro/internal/infra/queue"
	"leadpro/internal/usecase"
	"leadpro/internal/webhook"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("❌ Erro ao conectar no banco: %v", err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatalf("❌ Erro ao conectar no RabbitMQ: %v", err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	redisClient, err := media.NewRedisClient(context.Background(),
		envOr("REDIS_ADDR", "localhost:6379"), os.Getenv("REDIS_PASSWORD"))
	if err != nil {
		log.Fatalf("❌ Erro ao conectar no Redis: %v", err)
	}
	defer redisClient.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	interactionRepo := database.NewInteractionRepository(db)
	userRepo := database.NewUserRepository(db)
	webhookRepo := database.NewWebhookRepository(db)

	// 2. Entrega de webhooks: producer publica na fila, worker consome e entrega
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	dispatcher := webhook.NewDispatcher(webhookRepo)

	worker := queue.NewWorker(rabbitMQ.Ch, dispatcher)
	go worker.Start(queue.QueueName)

	// 3. Mídia
	mediaStore := media.NewStore(redisClient)

	// 4. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, producer)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo, producer)
	deleteLeadUC := usecase.NewDeleteLeadUseCase(leadRepo, producer)
	createInteractionUC := usecase.NewCreateInteractionUseCase(interactionRepo, leadRepo, producer)
	saveWebhookUC := usecase.NewSaveWebhookUseCase(webhookRepo)
	saveUserUC := usecase.NewSaveUserUseCase(userRepo)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(leadRepo, interactionRepo, createLeadUC, updateLeadUC, deleteLeadUC)
	interactionHandler := handlers.NewInteractionHandler(createInteractionUC)
	userHandler := handlers.NewUserHandler(userRepo, saveUserUC)
	webhookHandler := handlers.NewWebhookHandler(webhookRepo, saveWebhookUC, dispatcher)
	mediaHandler := handlers.NewMediaHandler(mediaStore)
	dashboardHandler := handlers.NewDashboardHandler(db)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, redisClient)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:4200", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Handle)

		r.Route("/leads", func(r chi.Router) {
			r.Get("/", leadHandler.List)
			r.Post("/", leadHandler.Create)
			r.Get("/{id}", leadHandler.Get)
			r.Put("/{id}", leadHandler.Update)
			r.Delete("/{id}", leadHandler.Delete)
			r.Get("/{id}/interactions", leadHandler.ListInteractions)
		})

		r.Post("/interactions", interactionHandler.Create)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)
			r.Get("/{id}", userHandler.Get)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		r.Route("/webhooks", func(r chi.Router) {
			r.Get("/", webhookHandler.List)
			r.Post("/", webhookHandler.Create)
			r.Get("/{id}", webhookHandler.Get)
			r.Put("/{id}", webhookHandler.Update)
			r.Delete("/{id}", webhookHandler.Delete)
			r.Post("/{id}/test", webhookHandler.Test)
		})

		r.Route("/media", func(r chi.Router) {
			r.Post("/upload", mediaHandler.Upload)
			r.Get("/{id}", mediaHandler.Download)
			r.Delete("/{id}", mediaHandler.Delete)
		})

		r.Get("/dashboard/stats", dashboardHandler.Stats)
	})

	port := ":" + envOr("PORT", "3000")
	log.Printf("🔥 Server LeadPro rodando na porta %s", port)
	if err := http.ListenAndServe(port, r); err != nil {
		log.Fatalf("❌ Servidor encerrou com erro: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
