package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/advance"
	"github.com/Jaganbehera1/Worker-Management-System/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

const advanceColumns = `id, employee_id, date, amount, description, created_at, updated_at`

func scanAdvance(row pgx.Row) (advance.Advance, error) {
	var adv advance.Advance
	err := row.Scan(
		&adv.ID, &adv.EmployeeID, &adv.Date, &adv.Amount, &adv.Description,
		&adv.CreatedAt, &adv.UpdatedAt,
	)
	return adv, err
}

// Create implements advance.AdvanceRepository.
func (r *advanceRepository) Create(ctx context.Context, adv advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advances (id, employee_id, date, amount, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		adv.ID, adv.EmployeeID, adv.Date, adv.Amount, adv.Description,
	).Scan(&adv.CreatedAt, &adv.UpdatedAt)

	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return adv, nil
}

// GetByID implements advance.AdvanceRepository.
func (r *advanceRepository) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + advanceColumns + `
		FROM advances
		WHERE id = $1
	`

	adv, err := scanAdvance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to get advance: %w", err)
	}

	return adv, nil
}

// ListByEmployeeAndRange implements advance.AdvanceRepository.
func (r *advanceRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + advanceColumns + `
		FROM advances
		WHERE employee_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	return collectAdvances(rows)
}

// ListByRange implements advance.AdvanceRepository.
func (r *advanceRepository) ListByRange(ctx context.Context, start, end time.Time) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + advanceColumns + `
		FROM advances
		WHERE date >= $1
		  AND date <= $2
		ORDER BY employee_id, date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	return collectAdvances(rows)
}

func collectAdvances(rows pgx.Rows) ([]advance.Advance, error) {
	var result []advance.Advance
	for rows.Next() {
		adv, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		result = append(result, adv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read advances: %w", err)
	}
	return result, nil
}

// Delete implements advance.AdvanceRepository.
func (r *advanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM advances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete advance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}

	return nil
}
