package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/apperrors"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	portsrepo "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/repositories"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/models"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/utils/mapping"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/utils/pagination"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, invoice_number, invoice_date, invoice_status, customer_id, customer_name,
	customer_address, customer_phone, customer_gst, buyer_order_no, vehicle_no, payment_terms, items,
	subtotal, total_discount, overall_discount_type, overall_discount_value, overall_discount_amount,
	taxable_amount, is_interstate, cgst_amount, sgst_amount, igst_amount, total_gst, grand_total,
	payment_status, stock_updated, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID, &m.InvoiceNumber, &m.InvoiceDate, &m.InvoiceStatus, &m.CustomerID, &m.CustomerName,
		&m.CustomerAddress, &m.CustomerPhone, &m.CustomerGST, &m.BuyerOrderNo, &m.VehicleNo, &m.PaymentTerms, &m.Items,
		&m.Subtotal, &m.TotalDiscount, &m.OverallDiscountType, &m.OverallDiscountValue, &m.OverallDiscountAmount,
		&m.TaxableAmount, &m.IsInterstate, &m.CGSTAmount, &m.SGSTAmount, &m.IGSTAmount, &m.TotalGST, &m.GrandTotal,
		&m.PaymentStatus, &m.StockUpdated, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func collectInvoices(rows pgx.Rows) ([]models.Invoice, error) {
	defer rows.Close()
	var ms []models.Invoice
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return ms, nil
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InvoiceID, m.InvoiceNumber, m.InvoiceDate, m.InvoiceStatus, m.CustomerID, m.CustomerName,
		m.CustomerAddress, m.CustomerPhone, m.CustomerGST, m.BuyerOrderNo, m.VehicleNo, m.PaymentTerms, m.Items,
		m.Subtotal, m.TotalDiscount, m.OverallDiscountType, m.OverallDiscountValue, m.OverallDiscountAmount,
		m.TaxableAmount, m.IsInterstate, m.CGSTAmount, m.SGSTAmount, m.IGSTAmount, m.TotalGST, m.GrandTotal,
		m.PaymentStatus, m.StockUpdated, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save invoice: %w", err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}
	d := mapping.ToDomainInvoice(m)
	return &d, nil
}

func (r *PgxInvoiceRepository) FindInvoicesByCustomer(ctx context.Context, customerID string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE customer_id = $1 ORDER BY invoice_date ASC, created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices for customer %s: %w", customerID, err)
	}
	ms, err := collectInvoices(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainInvoiceSlice(ms), nil
}

// ListInvoices pages newest-first on (invoice_date, created_at) with a
// keyset token.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if nextToken != nil && *nextToken != "" {
		var tokenDate, tokenCreatedAt time.Time
		tokenDate, tokenCreatedAt, err = pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		query := `SELECT ` + invoiceColumns + ` FROM invoices
			WHERE (invoice_date, created_at) < ($1, $2)
			ORDER BY invoice_date DESC, created_at DESC
			LIMIT $3;`
		rows, err = r.Pool.Query(ctx, query, tokenDate, tokenCreatedAt, limit+1)
	} else {
		query := `SELECT ` + invoiceColumns + ` FROM invoices
			ORDER BY invoice_date DESC, created_at DESC
			LIMIT $1;`
		rows, err = r.Pool.Query(ctx, query, limit+1)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	ms, err := collectInvoices(rows)
	if err != nil {
		return nil, nil, err
	}

	var newToken *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.InvoiceDate, last.CreatedAt)
		newToken = &token
	}
	return mapping.ToDomainInvoiceSlice(ms), newToken, nil
}

func (r *PgxInvoiceRepository) CountByNumberPrefix(ctx context.Context, prefix string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE invoice_number LIKE $1 || '%';`, prefix).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count invoices by prefix %s: %w", prefix, err)
	}
	return count, nil
}

func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string) error {
	query := `
		UPDATE invoices SET invoice_status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE invoice_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, invoiceID, string(status), time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update invoice status for %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) UpdatePaymentStatus(ctx context.Context, invoiceID string, status domain.PaymentStatus, updatedBy string) error {
	query := `
		UPDATE invoices SET payment_status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE invoice_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, invoiceID, string(status), time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update payment status for %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
