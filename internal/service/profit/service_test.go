package profit

import (
	"context"
	"testing"
	"time"

	"github.com/insightai/split-backend-go/internal/domain/profit"
	"github.com/insightai/split-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfitRepo struct {
	records []profit.ProfitRecord
}

func (f *fakeProfitRepo) Create(ctx context.Context, record profit.ProfitRecord) (profit.ProfitRecord, error) {
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeProfitRepo) GetLatestByOwner(ctx context.Context, ownerID string) (profit.ProfitRecord, error) {
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].OwnerID == ownerID {
			return f.records[i], nil
		}
	}
	return profit.ProfitRecord{}, profit.ErrNoProfitData
}

func (f *fakeProfitRepo) ListByOwner(ctx context.Context, ownerID string) ([]profit.ProfitRecord, error) {
	var out []profit.ProfitRecord
	for _, r := range f.records {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func addRecord(repo *fakeProfitRepo, ownerID string, period time.Time, revenue, expenses int64) {
	rev := decimal.NewFromInt(revenue)
	exp := decimal.NewFromInt(expenses)
	repo.records = append(repo.records, profit.ProfitRecord{
		OwnerID:  ownerID,
		Period:   period,
		Revenue:  rev,
		Expenses: exp,
		Profit:   rev.Sub(exp),
	})
}

// ===== RECORD PROFIT =====

func TestRecordProfit_MarginScenarios(t *testing.T) {
	tests := []struct {
		name     string
		revenue  int64
		expenses int64
		profit   int64
		margin   string
	}{
		{"thirty percent margin", 1000, 700, 300, "30"},
		{"twelve percent margin", 1000, 880, 120, "12"},
		{"five percent margin", 1000, 950, 50, "5"},
		{"loss still recorded", 1000, 1200, -200, "-20"},
		{"zero revenue clamps margin", 0, 100, -100, "0"},
		{"negative revenue clamps margin", -500, 100, -600, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeProfitRepo{}
			svc := NewProfitService(repo)

			result, err := svc.RecordProfit(context.Background(), profit.RecordProfitRequest{
				OwnerID:  "owner-1",
				Revenue:  decimal.NewFromInt(tt.revenue),
				Expenses: decimal.NewFromInt(tt.expenses),
			})

			require.NoError(t, err)
			wantMargin, err := decimal.NewFromString(tt.margin)
			require.NoError(t, err)
			assert.True(t, result.Profit.Equal(decimal.NewFromInt(tt.profit)), "profit: %s", result.Profit)
			assert.True(t, result.ProfitMargin.Equal(wantMargin), "margin: %s", result.ProfitMargin)

			// One dated record appended per call, margin derived, never set.
			require.Len(t, repo.records, 1)
			assert.Equal(t, "owner-1", repo.records[0].OwnerID)
			assert.False(t, repo.records[0].Period.IsZero())
			assert.True(t, repo.records[0].ProfitMargin.Equal(wantMargin))
		})
	}
}

func TestRecordProfit_AbsentFiguresDefaultToZero(t *testing.T) {
	repo := &fakeProfitRepo{}
	svc := NewProfitService(repo)

	result, err := svc.RecordProfit(context.Background(), profit.RecordProfitRequest{OwnerID: "owner-1"})

	require.NoError(t, err)
	assert.True(t, result.Profit.IsZero())
	assert.True(t, result.ProfitMargin.IsZero())
}

func TestRecordProfit_MissingOwnerIDFailsValidation(t *testing.T) {
	svc := NewProfitService(&fakeProfitRepo{})

	_, err := svc.RecordProfit(context.Background(), profit.RecordProfitRequest{
		Revenue: decimal.NewFromInt(1000),
	})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestRecordProfit_RepeatedCallsAppend(t *testing.T) {
	repo := &fakeProfitRepo{}
	svc := NewProfitService(repo)

	for i := 0; i < 3; i++ {
		_, err := svc.RecordProfit(context.Background(), profit.RecordProfitRequest{
			OwnerID: "owner-1",
			Revenue: decimal.NewFromInt(1000),
		})
		require.NoError(t, err)
	}

	// No per-month dedup: every call writes its own record.
	assert.Len(t, repo.records, 3)
}

// ===== PROFIT HISTORY =====

func TestGetOwnerHistory_GroupsByMonthAndSums(t *testing.T) {
	repo := &fakeProfitRepo{}
	svc := NewProfitService(repo)

	march := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	addRecord(repo, "owner-1", march, 1000, 700)
	addRecord(repo, "owner-1", march.AddDate(0, 0, 5), 500, 100)
	addRecord(repo, "owner-1", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 2000, 1500)

	history, err := svc.GetOwnerHistory(context.Background(), "owner-1")

	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, "2025-03", history[0].Month)
	assert.True(t, history[0].Revenue.Equal(decimal.NewFromInt(1500)), "revenue: %s", history[0].Revenue)
	assert.True(t, history[0].Expenses.Equal(decimal.NewFromInt(800)), "expenses: %s", history[0].Expenses)
	assert.True(t, history[0].Profit.Equal(decimal.NewFromInt(700)), "profit: %s", history[0].Profit)

	assert.Equal(t, "2025-02", history[1].Month)
	assert.True(t, history[1].Profit.Equal(decimal.NewFromInt(500)))
}

func TestGetOwnerHistory_CapsAtThreeNewestMonths(t *testing.T) {
	repo := &fakeProfitRepo{}
	svc := NewProfitService(repo)

	for month := 1; month <= 5; month++ {
		addRecord(repo, "owner-1", time.Date(2025, time.Month(month), 1, 0, 0, 0, 0, time.UTC), 1000, 500)
	}

	history, err := svc.GetOwnerHistory(context.Background(), "owner-1")

	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "2025-05", history[0].Month)
	assert.Equal(t, "2025-04", history[1].Month)
	assert.Equal(t, "2025-03", history[2].Month)
	for i := 1; i < len(history); i++ {
		assert.Greater(t, history[i-1].Month, history[i].Month, "history must be strictly descending by month")
	}
}

func TestGetOwnerHistory_NoRecordsReturnsEmpty(t *testing.T) {
	svc := NewProfitService(&fakeProfitRepo{})

	history, err := svc.GetOwnerHistory(context.Background(), "owner-1")

	require.NoError(t, err)
	assert.Empty(t, history)
	assert.NotNil(t, history)
}
