package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
	"github.com/IgorSouzaLima/rjlima/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

const invoiceColumns = `id, invoice_number, fiscal_key, collection_date, delivery_date, recipient, city, state, status,
	COALESCE(proof_photo_url, ''), COALESCE(proof_photo_path, ''), created_at, updated_at`

// InvoicePostgresRepository persists Invoice entities in Postgres.
//
// Table requirements (see database.EnsureSchema):
//   - invoices: PK id, UNIQUE fiscal_key
type InvoicePostgresRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

var _ interfaces.IInvoiceRepository = (*InvoicePostgresRepository)(nil)

func NewInvoicePostgresRepository(pool *pgxpool.Pool) *InvoicePostgresRepository {
	return &InvoicePostgresRepository{
		pool: pool,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (r *InvoicePostgresRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO invoices (id, invoice_number, fiscal_key, collection_date, delivery_date, recipient, city, state, status,
			proof_photo_url, proof_photo_path, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NULLIF($10,''),NULLIF($11,''),$12,$13)
	`, inv.ID, inv.InvoiceNumber, inv.FiscalKey, inv.CollectionDate, inv.DeliveryDate, inv.Recipient, inv.City, inv.State,
		string(inv.Status), inv.ProofPhotoURL, inv.ProofPhotoPath, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.Invoice{}, entities.ErrDuplicateFiscalKey
		}
		return entities.Invoice{}, fmt.Errorf("insert invoice: %w", err)
	}
	return inv, nil
}

func (r *InvoicePostgresRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id=$1`, id)
}

func (r *InvoicePostgresRepository) GetByFiscalKey(ctx context.Context, fiscalKey string) (entities.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE fiscal_key=$1`, fiscalKey)
}

func (r *InvoicePostgresRepository) getOne(ctx context.Context, query string, arg string) (entities.Invoice, error) {
	inv, err := scanInvoice(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, fmt.Errorf("select invoice: %w", err)
	}
	return inv, nil
}

func (r *InvoicePostgresRepository) List(ctx context.Context, filter entities.InvoiceFilter) ([]entities.Invoice, int, error) {
	filter = filter.Normalized()
	where, args := listConditions(filter)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM invoices%s ORDER BY collection_date DESC, created_at DESC LIMIT $%d OFFSET $%d`,
		invoiceColumns, where, len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, query, append(args, filter.Limit(), filter.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	items := []entities.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan invoice: %w", err)
		}
		items = append(items, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	return items, total, nil
}

func (r *InvoicePostgresRepository) Update(ctx context.Context, id string, patch entities.InvoicePatch) (entities.Invoice, error) {
	sets, args := updateAssignments(patch)
	args = append(args, r.now())
	sets = append(sets, fmt.Sprintf("updated_at=$%d", len(args)))
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE invoices SET %s WHERE id=$%d RETURNING %s`, strings.Join(sets, ", "), len(args), invoiceColumns)
	inv, err := scanInvoice(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Invoice{}, nil
		}
		if isUniqueViolation(err) {
			return entities.Invoice{}, entities.ErrDuplicateFiscalKey
		}
		return entities.Invoice{}, fmt.Errorf("update invoice: %w", err)
	}
	return inv, nil
}

func (r *InvoicePostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// listConditions builds the WHERE clause (with leading space) for filter.
func listConditions(filter entities.InvoiceFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if q := strings.TrimSpace(filter.Search); q != "" {
		args = append(args, "%"+escapeLike(q)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(`(invoice_number ILIKE $%d ESCAPE '\' OR recipient ILIKE $%d ESCAPE '\' OR fiscal_key ILIKE $%d ESCAPE '\')`, n, n, n))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// updateAssignments turns the set fields of patch into SET clauses.
func updateAssignments(patch entities.InvoicePatch) ([]string, []any) {
	var sets []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s=$%d", col, len(args)))
	}

	if patch.InvoiceNumber != nil {
		add("invoice_number", *patch.InvoiceNumber)
	}
	if patch.FiscalKey != nil {
		add("fiscal_key", *patch.FiscalKey)
	}
	if patch.CollectionDate != nil {
		add("collection_date", *patch.CollectionDate)
	}
	if patch.Recipient != nil {
		add("recipient", *patch.Recipient)
	}
	if patch.City != nil {
		add("city", *patch.City)
	}
	if patch.State != nil {
		add("state", *patch.State)
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	if patch.ClearDeliveryDate {
		sets = append(sets, "delivery_date=NULL")
	} else if patch.DeliveryDate != nil {
		add("delivery_date", *patch.DeliveryDate)
	}
	if patch.ClearProofPhoto {
		sets = append(sets, "proof_photo_url=NULL", "proof_photo_path=NULL")
	} else if patch.ProofPhoto != nil {
		add("proof_photo_url", patch.ProofPhoto.URL)
		add("proof_photo_path", patch.ProofPhoto.Path)
	}
	return sets, args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func scanInvoice(row pgx.Row) (entities.Invoice, error) {
	var (
		inv    entities.Invoice
		status string
	)
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.FiscalKey, &inv.CollectionDate, &inv.DeliveryDate,
		&inv.Recipient, &inv.City, &inv.State, &status, &inv.ProofPhotoURL, &inv.ProofPhotoPath,
		&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv.Status = entities.InvoiceStatus(status)
	inv.CollectionDate = inv.CollectionDate.UTC()
	if inv.DeliveryDate != nil {
		d := inv.DeliveryDate.UTC()
		inv.DeliveryDate = &d
	}
	return inv, nil
}
