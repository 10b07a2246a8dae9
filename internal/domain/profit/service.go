package profit

import "context"

type ProfitService interface {
	RecordProfit(ctx context.Context, req RecordProfitRequest) (RecordProfitResponse, error)
	// GetOwnerHistory returns at most the 3 most recent calendar months,
	// newest first, with revenue/expenses/profit summed per month.
	GetOwnerHistory(ctx context.Context, ownerID string) ([]MonthlyProfit, error)
}
