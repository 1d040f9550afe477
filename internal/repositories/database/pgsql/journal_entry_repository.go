package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/apperrors"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	portsrepo "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/repositories"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/models"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/utils/mapping"
)

type PgxJournalEntryRepository struct {
	BaseRepository
}

func newPgxJournalEntryRepository(db *pgxpool.Pool) portsrepo.JournalEntryRepositoryFacade {
	return &PgxJournalEntryRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.JournalEntryRepositoryFacade = (*PgxJournalEntryRepository)(nil)

const journalEntryColumns = `entry_id, entry_number, entry_date, entry_type, customer_id, customer_name,
	description, amount, reference_type, reference_id, reference_number, status,
	created_at, created_by, last_updated_at, last_updated_by`

func scanJournalEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID, &m.EntryNumber, &m.EntryDate, &m.EntryType, &m.CustomerID, &m.CustomerName,
		&m.Description, &m.Amount, &m.ReferenceType, &m.ReferenceID, &m.ReferenceNumber, &m.Status,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func collectJournalEntries(rows pgx.Rows) ([]models.JournalEntry, error) {
	defer rows.Close()
	var ms []models.JournalEntry
	for rows.Next() {
		m, err := scanJournalEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}
	return ms, nil
}

func (r *PgxJournalEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	query := `
		INSERT INTO journal_entries (` + journalEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.EntryNumber, m.EntryDate, m.EntryType, m.CustomerID, m.CustomerName,
		m.Description, m.Amount, m.ReferenceType, m.ReferenceID, m.ReferenceNumber, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save journal entry: %w", err)
	}
	return nil
}

func (r *PgxJournalEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	m, err := scanJournalEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry by ID %s: %w", entryID, err)
	}
	d := mapping.ToDomainJournalEntry(m)
	return &d, nil
}

func (r *PgxJournalEntryRepository) FindEntriesByCustomer(ctx context.Context, customerID string) ([]domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE customer_id = $1 ORDER BY entry_date ASC, created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries for customer %s: %w", customerID, err)
	}
	ms, err := collectJournalEntries(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainJournalEntrySlice(ms), nil
}

func (r *PgxJournalEntryRepository) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries ORDER BY entry_date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	ms, err := collectJournalEntries(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainJournalEntrySlice(ms), nil
}

func (r *PgxJournalEntryRepository) CountByNumberPrefix(ctx context.Context, prefix string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM journal_entries WHERE entry_number LIKE $1 || '%';`, prefix).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count journal entries by prefix %s: %w", prefix, err)
	}
	return count, nil
}

func (r *PgxJournalEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
