package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/payment"
	"github.com/Jaganbehera1/Worker-Management-System/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// paymentRepository talks to the salary-payment store, which runs on its
// own connection pool and can be down while the main database is fine.
// Read methods surface that state as payment.ErrStoreUnavailable so the
// report path can treat it as "not loaded yet" instead of failing.
type paymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, employee_id, date, amount, description, created_at, updated_at`

func scanPayment(row pgx.Row) (payment.Payment, error) {
	var pay payment.Payment
	err := row.Scan(
		&pay.ID, &pay.EmployeeID, &pay.Date, &pay.Amount, &pay.Description,
		&pay.CreatedAt, &pay.UpdatedAt,
	)
	return pay, err
}

// Create implements payment.PaymentRepository.
func (r *paymentRepository) Create(ctx context.Context, pay payment.Payment) (payment.Payment, error) {
	query := `
		INSERT INTO salary_payments (id, employee_id, date, amount, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		pay.ID, pay.EmployeeID, pay.Date, pay.Amount, pay.Description,
	).Scan(&pay.CreatedAt, &pay.UpdatedAt)

	if err != nil {
		return payment.Payment{}, fmt.Errorf("failed to create salary payment: %w", err)
	}

	return pay, nil
}

// GetByID implements payment.PaymentRepository.
func (r *paymentRepository) GetByID(ctx context.Context, id string) (payment.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM salary_payments
		WHERE id = $1
	`

	pay, err := scanPayment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.Payment{}, payment.ErrPaymentNotFound
		}
		return payment.Payment{}, fmt.Errorf("failed to get salary payment: %w", err)
	}

	return pay, nil
}

// ListByEmployeeAndRange implements payment.PaymentRepository.
func (r *paymentRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]payment.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM salary_payments
		WHERE employee_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date
	`

	rows, err := r.db.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

// ListByRange implements payment.PaymentRepository.
func (r *paymentRepository) ListByRange(ctx context.Context, start, end time.Time) ([]payment.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM salary_payments
		WHERE date >= $1
		  AND date <= $2
		ORDER BY employee_id, date
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

func collectPayments(rows pgx.Rows) ([]payment.Payment, error) {
	var result []payment.Payment
	for rows.Next() {
		pay, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary payment: %w", err)
		}
		result = append(result, pay)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrStoreUnavailable, err)
	}
	return result, nil
}

// Delete implements payment.PaymentRepository.
func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM salary_payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete salary payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}

	return nil
}
