// cmd/cards/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"libracard/internal/cards"
	"libracard/internal/config"
	"libracard/internal/telemetry"
	"libracard/pkg/eventstore"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, "libracard-cards", cfg.OTELEndpoint)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer shutdown(ctx)

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	es := eventstore.NewEventStore(db)
	repo := cards.NewPostgresRepository(es, db)
	notifier := cards.NewEmailNotifier(cfg.SMTPHost, cfg.SMTPPort)
	printer := cards.NewConsolePrinter(nil)
	renderer := cards.NewTextRenderer(cfg.Institution)
	svc := cards.NewService(cards.NewValidator(), renderer, repo, notifier, printer)
	handler := cards.NewHandler(svc)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/cards", handler.HandleIssueCard)

	fmt.Printf("🚀 Starting Cards Service on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
