package application

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/mesadeayuda/helpdesk-service/internal/config"
	"github.com/mesadeayuda/helpdesk-service/internal/database"
	"github.com/mesadeayuda/helpdesk-service/internal/events"
	"github.com/mesadeayuda/helpdesk-service/internal/handler"
	"github.com/mesadeayuda/helpdesk-service/internal/router"
	"github.com/mesadeayuda/helpdesk-service/internal/service"
	"github.com/mesadeayuda/helpdesk-service/internal/session"
)

// API wires config, storage, cache, events and the HTTP server.
type API struct {
	cfg      *config.Config
	httpSrv  *http.Server
	producer *events.Producer
}

func NewAPI(cfg *config.Config) (*API, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := database.MigrateUp(cfg.DatabaseURL()); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicTicket)
	resolver := session.NewResolver(db, cfg.NewRedisClient(), cfg.JWTSecret, cfg.RoleCacheTTL)
	ticketSvc := service.NewTicketService(db, producer)
	catalogSvc := service.NewCatalogService(db)

	h := router.New(
		resolver,
		handler.NewTicketHandler(ticketSvc),
		handler.NewCatalogHandler(catalogSvc),
	)

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &API{cfg: cfg, httpSrv: httpSrv, producer: producer}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *API) Run(ctx context.Context) error {
	host := a.cfg.AppHost
	if host == "0.0.0.0" {
		host = "localhost"
	}
	base := "http://" + host + ":" + a.cfg.HTTPPort
	log.Printf("HTTP server listening on %s", a.httpSrv.Addr)
	log.Printf("  Swagger UI:    %s/swagger", base)
	log.Printf("  Swagger spec:  %s/swagger/openapi.json", base)
	log.Printf("  Health:        %s/health", base)
	log.Printf("  Ready:         %s/ready", base)
	log.Printf("  API v1:        %s/api/v1/", base)

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := a.producer.Close(); err != nil {
		log.Printf("events: close producer: %v", err)
	}
	return nil
}
