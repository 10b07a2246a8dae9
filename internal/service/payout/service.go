package payout

import (
	"context"

	"github.com/google/uuid"
	"github.com/insightai/split-backend-go/internal/domain/owner"
	"github.com/insightai/split-backend-go/internal/domain/payee"
	"github.com/insightai/split-backend-go/internal/domain/payout"
	"github.com/insightai/split-backend-go/internal/domain/profit"
	"github.com/shopspring/decimal"
)

// Bonus tier policy: margin above 20 pays 10%, margin from 10 up to and
// including 20 pays 5%, anything below 10 pays nothing. The first check is
// strictly greater-than, so a margin of exactly 20 lands in the 5% tier.
var (
	highTierMargin = decimal.NewFromInt(20)
	midTierMargin  = decimal.NewFromInt(10)
	highTierRate   = decimal.NewFromFloat(0.10)
	midTierRate    = decimal.NewFromFloat(0.05)
)

func bonusRate(margin decimal.Decimal) decimal.Decimal {
	switch {
	case margin.GreaterThan(highTierMargin):
		return highTierRate
	case margin.GreaterThanOrEqual(midTierMargin):
		return midTierRate
	default:
		return decimal.Zero
	}
}

type PayoutServiceImpl struct {
	profitRepo profit.ProfitRepository
	payeeRepo  payee.PayeeRepository
	payoutRepo payout.PayoutRepository
	ownerRepo  owner.OwnerRepository
}

func NewPayoutService(
	profitRepo profit.ProfitRepository,
	payeeRepo payee.PayeeRepository,
	payoutRepo payout.PayoutRepository,
	ownerRepo owner.OwnerRepository,
) payout.PayoutService {
	return &PayoutServiceImpl{
		profitRepo: profitRepo,
		payeeRepo:  payeeRepo,
		payoutRepo: payoutRepo,
		ownerRepo:  ownerRepo,
	}
}

// RunPayout implements payout.PayoutService.
//
// Every payout row is committed on its own, with no wrapping transaction.
// A failure partway through leaves the rows written so far in place and
// surfaces the error; re-running the payout writes a fresh full set.
func (s *PayoutServiceImpl) RunPayout(ctx context.Context, req payout.RunPayoutRequest) ([]payout.PayoutResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	latest, err := s.profitRepo.GetLatestByOwner(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	rate := bonusRate(latest.ProfitMargin)

	workers, err := s.payeeRepo.ListWorkersByOwner(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	results := make([]payout.PayoutResult, 0, len(workers))
	for _, w := range workers {
		bonus := w.BaseSalary.Mul(rate)
		final := w.BaseSalary.Add(bonus)

		_, err := s.payoutRepo.Create(ctx, payout.PayoutRecord{
			ID:          uuid.NewString(),
			OwnerID:     req.OwnerID,
			PayeeID:     w.ID,
			PayeeType:   payee.TypeWorker,
			PayeeName:   w.Name,
			BaseAmount:  w.BaseSalary,
			BonusAmount: bonus,
			FinalAmount: final,
		})
		if err != nil {
			return nil, err
		}

		results = append(results, payout.PayoutResult{
			Payee: w.Name,
			Type:  string(payee.TypeWorker),
			Base:  w.BaseSalary,
			Bonus: bonus,
			Final: final,
		})
	}

	expenses, err := s.payeeRepo.ListFixedPayeesByOwner(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	for _, e := range expenses {
		_, err := s.payoutRepo.Create(ctx, payout.PayoutRecord{
			ID:          uuid.NewString(),
			OwnerID:     req.OwnerID,
			PayeeID:     e.ID,
			PayeeType:   payee.TypeExpense,
			PayeeName:   e.Name,
			BaseAmount:  e.FixedAmount,
			BonusAmount: decimal.Zero,
			FinalAmount: e.FixedAmount,
		})
		if err != nil {
			return nil, err
		}

		results = append(results, payout.PayoutResult{
			Payee: e.Name,
			Type:  string(payee.TypeExpense),
			Base:  e.FixedAmount,
			Bonus: decimal.Zero,
			Final: e.FixedAmount,
		})
	}

	return results, nil
}

// GetReceipts implements payout.PayoutService.
func (s *PayoutServiceImpl) GetReceipts(ctx context.Context, payeeID string) ([]payout.PayoutRecordResponse, error) {
	records, err := s.payoutRepo.ListByPayee(ctx, payeeID)
	if err != nil {
		return nil, err
	}

	receipts := make([]payout.PayoutRecordResponse, 0, len(records))
	for _, r := range records {
		receipts = append(receipts, payout.PayoutRecordResponse{
			ID:          r.ID,
			OwnerID:     r.OwnerID,
			PayeeID:     r.PayeeID,
			PayeeType:   string(r.PayeeType),
			PayeeName:   r.PayeeName,
			BaseAmount:  r.BaseAmount,
			BonusAmount: r.BonusAmount,
			FinalAmount: r.FinalAmount,
			CreatedAt:   r.CreatedAt,
		})
	}

	return receipts, nil
}

// AddFixedPayee implements payout.PayoutService.
func (s *PayoutServiceImpl) AddFixedPayee(ctx context.Context, req payee.AddFixedPayeeRequest) (payee.FixedPayeeResponse, error) {
	if err := req.Validate(); err != nil {
		return payee.FixedPayeeResponse{}, err
	}

	if _, err := s.ownerRepo.GetByID(ctx, req.OwnerID); err != nil {
		return payee.FixedPayeeResponse{}, err
	}

	created, err := s.payeeRepo.CreateFixedPayee(ctx, payee.FixedPayee{
		ID:          uuid.NewString(),
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		FixedAmount: req.FixedAmount,
	})
	if err != nil {
		return payee.FixedPayeeResponse{}, err
	}

	return payee.FixedPayeeResponse{
		ID:          created.ID,
		OwnerID:     created.OwnerID,
		Name:        created.Name,
		FixedAmount: created.FixedAmount,
	}, nil
}

// ListFixedPayees implements payout.PayoutService.
func (s *PayoutServiceImpl) ListFixedPayees(ctx context.Context, ownerID string) ([]payee.FixedPayeeResponse, error) {
	payees, err := s.payeeRepo.ListFixedPayeesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]payee.FixedPayeeResponse, 0, len(payees))
	for _, p := range payees {
		responses = append(responses, payee.FixedPayeeResponse{
			ID:          p.ID,
			OwnerID:     p.OwnerID,
			Name:        p.Name,
			FixedAmount: p.FixedAmount,
		})
	}

	return responses, nil
}
