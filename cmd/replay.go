package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mesadeayuda/helpdesk-service/internal/config"
	"github.com/mesadeayuda/helpdesk-service/internal/database"
	"github.com/mesadeayuda/helpdesk-service/internal/events"
	"github.com/mesadeayuda/helpdesk-service/internal/model"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Republish all tickets to Kafka for downstream consumers",
	RunE:  runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if len(cfg.KafkaBrokers) == 0 || cfg.KafkaTopicTicket == "" {
		return fmt.Errorf("replay: KAFKA_BROKERS and KAFKA_TOPIC_TICKET are required")
	}
	conn, err := database.Open(cfg.DSN())
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}

	var tickets []model.Ticket
	if err := conn.Order("created_at").Find(&tickets).Error; err != nil {
		return fmt.Errorf("list tickets: %w", err)
	}
	log.Printf("replay: found %d tickets", len(tickets))

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
	defer cancel()

	producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicTicket)
	defer producer.Close()
	for i := range tickets {
		producer.ProduceTicketEvent(ctx, events.TicketReplayed, events.TicketPayload(&tickets[i]))
		if (i+1)%50 == 0 || i == len(tickets)-1 {
			log.Printf("replay: sent %d/%d events", i+1, len(tickets))
		}
	}
	log.Printf("replay: done, sent %d events", len(tickets))
	return nil
}
