package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/apperrors"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	portsrepo "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/repositories"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/models"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/utils/mapping"
)

type PgxDayBookRepository struct {
	BaseRepository
}

func newPgxDayBookRepository(db *pgxpool.Pool) portsrepo.DayBookRepositoryFacade {
	return &PgxDayBookRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.DayBookRepositoryFacade = (*PgxDayBookRepository)(nil)

const daybookColumns = `entry_id, entry_date, description, purpose, debit, credit, balance,
	created_at, created_by, last_updated_at, last_updated_by`

func scanDayBookEntry(row pgx.Row) (models.DayBookEntry, error) {
	var m models.DayBookEntry
	err := row.Scan(
		&m.EntryID, &m.Date, &m.Description, &m.Purpose, &m.Debit, &m.Credit, &m.Balance,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxDayBookRepository) SaveEntry(ctx context.Context, entry domain.DayBookEntry) error {
	m := mapping.ToModelDayBookEntry(entry)
	query := `
		INSERT INTO daybook_entries (` + daybookColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.Date, m.Description, m.Purpose, m.Debit, m.Credit, m.Balance,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save day book entry: %w", err)
	}
	return nil
}

func (r *PgxDayBookRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.DayBookEntry, error) {
	query := `SELECT ` + daybookColumns + ` FROM daybook_entries WHERE entry_id = $1;`
	m, err := scanDayBookEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find day book entry by ID %s: %w", entryID, err)
	}
	d := mapping.ToDomainDayBookEntry(m)
	return &d, nil
}

func (r *PgxDayBookRepository) ListEntries(ctx context.Context) ([]domain.DayBookEntry, error) {
	query := `SELECT ` + daybookColumns + ` FROM daybook_entries ORDER BY entry_date ASC, created_at ASC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list day book entries: %w", err)
	}
	defer rows.Close()

	var ms []models.DayBookEntry
	for rows.Next() {
		m, err := scanDayBookEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan day book entry row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating day book entry rows: %w", err)
	}
	return mapping.ToDomainDayBookEntrySlice(ms), nil
}

func (r *PgxDayBookRepository) UpdateEntry(ctx context.Context, entry domain.DayBookEntry) error {
	m := mapping.ToModelDayBookEntry(entry)
	query := `
		UPDATE daybook_entries SET
			entry_date = $2,
			description = $3,
			purpose = $4,
			debit = $5,
			credit = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE entry_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.Date, m.Description, m.Purpose, m.Debit, m.Credit,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update day book entry %s: %w", entry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDayBookRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM daybook_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete day book entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateBalances writes recomputed balances in a single transaction so a
// reader never observes a half-applied recompute.
func (r *PgxDayBookRepository) UpdateBalances(ctx context.Context, balances map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	now := time.Now().UTC()
	for entryID, balance := range balances {
		if _, err := tx.Exec(ctx,
			`UPDATE daybook_entries SET balance = $2, last_updated_at = $3 WHERE entry_id = $1;`,
			entryID, balance, now,
		); err != nil {
			return fmt.Errorf("failed to update balance for day book entry %s: %w", entryID, err)
		}
	}

	return r.Commit(ctx, tx)
}
