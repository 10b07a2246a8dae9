package postgresql

import (
	"context"
	"fmt"

	"github.com/insightai/split-backend-go/internal/domain/profit"
	"github.com/insightai/split-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type profitRepositoryImpl struct {
	db *database.DB
}

func NewProfitRepository(db *database.DB) profit.ProfitRepository {
	return &profitRepositoryImpl{db: db}
}

func (r *profitRepositoryImpl) Create(ctx context.Context, record profit.ProfitRecord) (profit.ProfitRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO profits (id, owner_id, period, revenue, expenses, profit, profit_margin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, owner_id, period, revenue, expenses, profit, profit_margin, created_at
	`

	var created profit.ProfitRecord
	err := q.QueryRow(ctx, query,
		record.ID, record.OwnerID, record.Period,
		record.Revenue, record.Expenses, record.Profit, record.ProfitMargin,
	).Scan(
		&created.ID, &created.OwnerID, &created.Period,
		&created.Revenue, &created.Expenses, &created.Profit, &created.ProfitMargin,
		&created.CreatedAt,
	)
	if err != nil {
		return profit.ProfitRecord{}, fmt.Errorf("failed to create profit record: %w", err)
	}

	return created, nil
}

func (r *profitRepositoryImpl) GetLatestByOwner(ctx context.Context, ownerID string) (profit.ProfitRecord, error) {
	q := GetQuerier(ctx, r.db)

	// Latest means last written, not latest period.
	query := `
		SELECT id, owner_id, period, revenue, expenses, profit, profit_margin, created_at
		FROM profits
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var p profit.ProfitRecord
	err := q.QueryRow(ctx, query, ownerID).Scan(
		&p.ID, &p.OwnerID, &p.Period,
		&p.Revenue, &p.Expenses, &p.Profit, &p.ProfitMargin,
		&p.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return profit.ProfitRecord{}, profit.ErrNoProfitData
		}
		return profit.ProfitRecord{}, fmt.Errorf("failed to get latest profit record: %w", err)
	}

	return p, nil
}

func (r *profitRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]profit.ProfitRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_id, period, revenue, expenses, profit, profit_margin, created_at
		FROM profits
		WHERE owner_id = $1
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profit records: %w", err)
	}
	defer rows.Close()

	var records []profit.ProfitRecord
	for rows.Next() {
		var p profit.ProfitRecord
		if err := rows.Scan(
			&p.ID, &p.OwnerID, &p.Period,
			&p.Revenue, &p.Expenses, &p.Profit, &p.ProfitMargin,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan profit record: %w", err)
		}
		records = append(records, p)
	}

	return records, nil
}
