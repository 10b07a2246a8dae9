package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/insightai/split-backend-go/internal/domain/payee"
	"github.com/insightai/split-backend-go/internal/domain/payout"
	"github.com/insightai/split-backend-go/internal/handler/http/response"
)

type PayoutHandler interface {
	RunPayout(w http.ResponseWriter, r *http.Request)
	GetReceipts(w http.ResponseWriter, r *http.Request)
	AddFixedPayee(w http.ResponseWriter, r *http.Request)
	ListFixedPayees(w http.ResponseWriter, r *http.Request)
}

type payoutHandlerImpl struct {
	payoutService payout.PayoutService
}

func NewPayoutHandler(payoutService payout.PayoutService) PayoutHandler {
	return &payoutHandlerImpl{payoutService: payoutService}
}

func (h *payoutHandlerImpl) RunPayout(w http.ResponseWriter, r *http.Request) {
	var req payout.RunPayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payoutService.RunPayout(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payoutHandlerImpl) GetReceipts(w http.ResponseWriter, r *http.Request) {
	payeeID := chi.URLParam(r, "payeeID")
	if payeeID == "" {
		response.BadRequest(w, "Payee ID is required", nil)
		return
	}

	result, err := h.payoutService.GetReceipts(r.Context(), payeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payoutHandlerImpl) AddFixedPayee(w http.ResponseWriter, r *http.Request) {
	var req payee.AddFixedPayeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payoutService.AddFixedPayee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Fixed payee created", result)
}

func (h *payoutHandlerImpl) ListFixedPayees(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")
	if ownerID == "" {
		response.BadRequest(w, "Owner ID is required", nil)
		return
	}

	result, err := h.payoutService.ListFixedPayees(r.Context(), ownerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
