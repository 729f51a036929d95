package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/customer-directory/internal/config"
	"github.com/wekeepgrowing/customer-directory/internal/domain/directory"
	stripeDirectory "github.com/wekeepgrowing/customer-directory/internal/infrastructure/directory/stripe"
)

// Pages through the entire customer directory and writes one JSON
// customer per line to stdout.
func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	dir := stripeDirectory.NewStripeDirectory(cfg.Service.StripeSecretKey, logger)

	ctx := context.Background()
	encoder := json.NewEncoder(os.Stdout)

	exported := 0
	cursor := ""
	for {
		page, err := dir.ListCustomers(ctx, &directory.ListCustomersParams{
			Limit:         directory.MaxListLimit,
			StartingAfter: cursor,
		})
		if err != nil {
			logger.Fatal("Failed to list customers", zap.Error(err))
		}

		for _, customer := range page.Data {
			if err := encoder.Encode(customer); err != nil {
				logger.Fatal("Failed to encode customer",
					zap.String("customer_id", customer.ID),
					zap.Error(err))
			}
			exported++
		}

		if !page.HasMore || len(page.Data) == 0 {
			break
		}
		cursor = page.Data[len(page.Data)-1].ID
	}

	logger.Info("Export completed", zap.Int("customers_exported", exported))
}
