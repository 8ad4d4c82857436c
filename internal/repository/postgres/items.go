package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"folio/internal/domain"
)

// Line items live in one table per document type (invoice_items,
// quotation_items, receipt_items), all with the same shape. These helpers
// keep the per-type repos from repeating the plumbing.

func replaceItems(ctx context.Context, tx *sqlx.Tx, table string, docID uuid.UUID, items []domain.LineItem) error {
	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE document_id = $1", table), docID); err != nil {
		return fmt.Errorf("clearing %s: %w", table, err)
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		_, err := tx.ExecContext(ctx, fmt.Sprintf(
			`INSERT INTO %s (id, document_id, position, description, quantity, rate, amount)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`, table),
			items[i].ID, docID, i, items[i].Description,
			items[i].Quantity, items[i].Rate, items[i].Amount)
		if err != nil {
			return fmt.Errorf("inserting into %s: %w", table, err)
		}
	}
	return nil
}

func loadItems(ctx context.Context, db *sqlx.DB, table string, docID uuid.UUID) ([]domain.LineItem, error) {
	items := []domain.LineItem{}
	err := db.SelectContext(ctx, &items, fmt.Sprintf(
		`SELECT id, description, quantity, rate, amount
		 FROM %s WHERE document_id = $1 ORDER BY position`, table), docID)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", table, err)
	}
	return items, nil
}

// loadItemsBulk fetches line items for many documents in one query and
// groups them by document id (used by list and sync reads).
func loadItemsBulk(ctx context.Context, db *sqlx.DB, table string, docIDs []uuid.UUID) (map[uuid.UUID][]domain.LineItem, error) {
	grouped := make(map[uuid.UUID][]domain.LineItem, len(docIDs))
	if len(docIDs) == 0 {
		return grouped, nil
	}
	query, args, err := sqlx.In(fmt.Sprintf(
		`SELECT id, document_id, description, quantity, rate, amount
		 FROM %s WHERE document_id IN (?) ORDER BY document_id, position`, table), docIDs)
	if err != nil {
		return nil, fmt.Errorf("building %s bulk query: %w", table, err)
	}
	var rows []struct {
		domain.LineItem
		DocumentID uuid.UUID `db:"document_id"`
	}
	if err := db.SelectContext(ctx, &rows, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("loading %s bulk: %w", table, err)
	}
	for _, row := range rows {
		grouped[row.DocumentID] = append(grouped[row.DocumentID], row.LineItem)
	}
	return grouped, nil
}

// isUniqueViolation reports whether err is a duplicate-key error on the given
// column's unique index.
func isUniqueViolation(err error, column string) bool {
	return err != nil &&
		strings.Contains(err.Error(), "duplicate key") &&
		strings.Contains(err.Error(), column)
}

// isForeignKeyViolation reports whether err is a referential-integrity error,
// e.g. deleting a client that documents still point at.
func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "violates foreign key constraint")
}
