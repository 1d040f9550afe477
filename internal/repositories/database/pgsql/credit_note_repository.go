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

type PgxCreditNoteRepository struct {
	BaseRepository
}

func newPgxCreditNoteRepository(db *pgxpool.Pool) portsrepo.CreditNoteRepositoryFacade {
	return &PgxCreditNoteRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CreditNoteRepositoryFacade = (*PgxCreditNoteRepository)(nil)

const creditNoteColumns = `credit_note_id, credit_note_number, credit_note_date, invoice_id, invoice_number,
	customer_id, customer_name, reason, items, subtotal, total_discount, taxable_amount, is_interstate,
	cgst_amount, sgst_amount, igst_amount, total_gst, credit_amount, stock_restored,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCreditNote(row pgx.Row) (models.CreditNote, error) {
	var m models.CreditNote
	err := row.Scan(
		&m.CreditNoteID, &m.CreditNoteNumber, &m.CreditNoteDate, &m.InvoiceID, &m.InvoiceNumber,
		&m.CustomerID, &m.CustomerName, &m.Reason, &m.Items, &m.Subtotal, &m.TotalDiscount, &m.TaxableAmount, &m.IsInterstate,
		&m.CGSTAmount, &m.SGSTAmount, &m.IGSTAmount, &m.TotalGST, &m.CreditAmount, &m.StockRestored,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func collectCreditNotes(rows pgx.Rows) ([]models.CreditNote, error) {
	defer rows.Close()
	var ms []models.CreditNote
	for rows.Next() {
		m, err := scanCreditNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credit note row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating credit note rows: %w", err)
	}
	return ms, nil
}

func (r *PgxCreditNoteRepository) SaveCreditNote(ctx context.Context, creditNote domain.CreditNote) error {
	m := mapping.ToModelCreditNote(creditNote)
	query := `
		INSERT INTO credit_notes (` + creditNoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CreditNoteID, m.CreditNoteNumber, m.CreditNoteDate, m.InvoiceID, m.InvoiceNumber,
		m.CustomerID, m.CustomerName, m.Reason, m.Items, m.Subtotal, m.TotalDiscount, m.TaxableAmount, m.IsInterstate,
		m.CGSTAmount, m.SGSTAmount, m.IGSTAmount, m.TotalGST, m.CreditAmount, m.StockRestored,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save credit note: %w", err)
	}
	return nil
}

func (r *PgxCreditNoteRepository) FindCreditNoteByID(ctx context.Context, creditNoteID string) (*domain.CreditNote, error) {
	query := `SELECT ` + creditNoteColumns + ` FROM credit_notes WHERE credit_note_id = $1;`
	m, err := scanCreditNote(r.Pool.QueryRow(ctx, query, creditNoteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find credit note by ID %s: %w", creditNoteID, err)
	}
	d := mapping.ToDomainCreditNote(m)
	return &d, nil
}

func (r *PgxCreditNoteRepository) FindCreditNotesByCustomer(ctx context.Context, customerID string) ([]domain.CreditNote, error) {
	query := `SELECT ` + creditNoteColumns + ` FROM credit_notes WHERE customer_id = $1 ORDER BY credit_note_date ASC, created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query credit notes for customer %s: %w", customerID, err)
	}
	ms, err := collectCreditNotes(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainCreditNoteSlice(ms), nil
}

func (r *PgxCreditNoteRepository) ListCreditNotes(ctx context.Context) ([]domain.CreditNote, error) {
	query := `SELECT ` + creditNoteColumns + ` FROM credit_notes ORDER BY credit_note_date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit notes: %w", err)
	}
	ms, err := collectCreditNotes(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainCreditNoteSlice(ms), nil
}

func (r *PgxCreditNoteRepository) CountByNumberPrefix(ctx context.Context, prefix string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM credit_notes WHERE credit_note_number LIKE $1 || '%';`, prefix).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count credit notes by prefix %s: %w", prefix, err)
	}
	return count, nil
}

func (r *PgxCreditNoteRepository) DeleteCreditNote(ctx context.Context, creditNoteID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM credit_notes WHERE credit_note_id = $1;`, creditNoteID)
	if err != nil {
		return fmt.Errorf("failed to delete credit note %s: %w", creditNoteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
