package contactsync

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/natserract/activecampaign/pkg/activecampaign"
	"github.com/natserract/activecampaign/pkg/contactsync/postgres"
	"go.uber.org/zap"
)

// Source yields the contacts to push to ActiveCampaign.
type Source interface {
	ListContacts(ctx context.Context) ([]activecampaign.Contact, error)
}

type contactRow struct {
	Email     string  `db:"email"`
	FirstName *string `db:"first_name"`
	LastName  *string `db:"last_name"`
	Phone     *string `db:"phone"`
}

// PostgresSource reads contacts from a table with email, first_name,
// last_name and phone columns.
type PostgresSource struct {
	db     *postgres.DB
	table  string
	logger *zap.Logger
}

func NewPostgresSource(db *postgres.DB, table string, logger *zap.Logger) *PostgresSource {
	return &PostgresSource{
		db:     db,
		table:  table,
		logger: logger,
	}
}

func (s *PostgresSource) ListContacts(ctx context.Context) ([]activecampaign.Contact, error) {
	query := fmt.Sprintf(
		"SELECT email, first_name, last_name, phone FROM %s ORDER BY email",
		pgx.Identifier{s.table}.Sanitize(),
	)

	rows, err := s.db.Pool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[contactRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan contacts: %w", err)
	}

	contacts := make([]activecampaign.Contact, 0, len(records))
	for _, r := range records {
		contacts = append(contacts, activecampaign.Contact{
			Email:     r.Email,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Phone:     r.Phone,
		})
	}

	s.logger.Info("Loaded contacts from database",
		zap.String("table", s.table),
		zap.Int("count", len(contacts)))

	return contacts, nil
}
