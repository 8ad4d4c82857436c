// Command backfill assigns share tokens to documents created before token
// issuance existed. Documents that already carry a token are left untouched,
// so the command is safe to rerun.
// Usage: go run ./cmd/backfill
package main

import (
	"context"
	"fmt"
	"log"

	"folio/internal/config"
	"folio/internal/repository/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()

	targets := []struct {
		name     string
		backfill func(context.Context) (int, error)
	}{
		{"invoices", postgres.NewInvoiceRepo(db).BackfillTokens},
		{"quotations", postgres.NewQuotationRepo(db).BackfillTokens},
		{"receipts", postgres.NewReceiptRepo(db).BackfillTokens},
		{"contracts", postgres.NewContractRepo(db).BackfillTokens},
	}

	total := 0
	for _, t := range targets {
		n, err := t.backfill(ctx)
		if err != nil {
			return fmt.Errorf("backfilling %s: %w", t.name, err)
		}
		log.Printf("%s: %d tokens assigned", t.name, n)
		total += n
	}

	log.Printf("Backfill complete: %d tokens assigned", total)
	return nil
}
