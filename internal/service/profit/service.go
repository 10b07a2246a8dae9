package profit

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/insightai/split-backend-go/internal/domain/profit"
	"github.com/shopspring/decimal"
)

const historyMonths = 3

var hundred = decimal.NewFromInt(100)

type ProfitServiceImpl struct {
	profitRepo profit.ProfitRepository
}

func NewProfitService(profitRepo profit.ProfitRepository) profit.ProfitService {
	return &ProfitServiceImpl{profitRepo: profitRepo}
}

// RecordProfit implements profit.ProfitService.
func (s *ProfitServiceImpl) RecordProfit(ctx context.Context, req profit.RecordProfitRequest) (profit.RecordProfitResponse, error) {
	if err := req.Validate(); err != nil {
		return profit.RecordProfitResponse{}, err
	}

	// Negative revenue or expenses are accepted as-is; the margin clamp
	// below is the only guard.
	profitAmount := req.Revenue.Sub(req.Expenses)

	// Margin is 0 whenever revenue <= 0 to avoid dividing by zero.
	margin := decimal.Zero
	if req.Revenue.IsPositive() {
		margin = profitAmount.Div(req.Revenue).Mul(hundred)
	}

	created, err := s.profitRepo.Create(ctx, profit.ProfitRecord{
		ID:           uuid.NewString(),
		OwnerID:      req.OwnerID,
		Period:       time.Now(),
		Revenue:      req.Revenue,
		Expenses:     req.Expenses,
		Profit:       profitAmount,
		ProfitMargin: margin,
	})
	if err != nil {
		return profit.RecordProfitResponse{}, err
	}

	return profit.RecordProfitResponse{
		Profit:       created.Profit,
		ProfitMargin: created.ProfitMargin,
	}, nil
}

// GetOwnerHistory implements profit.ProfitService.
func (s *ProfitServiceImpl) GetOwnerHistory(ctx context.Context, ownerID string) ([]profit.MonthlyProfit, error) {
	records, err := s.profitRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string]*profit.MonthlyProfit)
	for _, r := range records {
		month := r.Period.Format("2006-01")
		row, ok := grouped[month]
		if !ok {
			row = &profit.MonthlyProfit{Month: month}
			grouped[month] = row
		}
		row.Revenue = row.Revenue.Add(r.Revenue)
		row.Expenses = row.Expenses.Add(r.Expenses)
		row.Profit = row.Profit.Add(r.Profit)
	}

	history := make([]profit.MonthlyProfit, 0, len(grouped))
	for _, row := range grouped {
		history = append(history, *row)
	}

	// "YYYY-MM" sorts chronologically as a string; newest month first.
	sort.Slice(history, func(i, j int) bool {
		return history[i].Month > history[j].Month
	})

	if len(history) > historyMonths {
		history = history[:historyMonths]
	}

	return history, nil
}
