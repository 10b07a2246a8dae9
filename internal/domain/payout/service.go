package payout

import (
	"context"

	"github.com/insightai/split-backend-go/internal/domain/payee"
)

type PayoutService interface {
	// RunPayout pays every payee of the owner off the latest recorded
	// profit margin: workers get the tiered bonus, fixed payees their
	// fixed amount. Workers come first in the result, then expenses.
	RunPayout(ctx context.Context, req RunPayoutRequest) ([]PayoutResult, error)
	GetReceipts(ctx context.Context, payeeID string) ([]PayoutRecordResponse, error)

	AddFixedPayee(ctx context.Context, req payee.AddFixedPayeeRequest) (payee.FixedPayeeResponse, error)
	ListFixedPayees(ctx context.Context, ownerID string) ([]payee.FixedPayeeResponse, error)
}
