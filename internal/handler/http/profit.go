package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/insightai/split-backend-go/internal/domain/profit"
	"github.com/insightai/split-backend-go/internal/handler/http/response"
)

type ProfitHandler interface {
	RecordProfit(w http.ResponseWriter, r *http.Request)
	GetOwnerHistory(w http.ResponseWriter, r *http.Request)
}

type profitHandlerImpl struct {
	profitService profit.ProfitService
}

func NewProfitHandler(profitService profit.ProfitService) ProfitHandler {
	return &profitHandlerImpl{profitService: profitService}
}

func (h *profitHandlerImpl) RecordProfit(w http.ResponseWriter, r *http.Request) {
	var req profit.RecordProfitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.profitService.RecordProfit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *profitHandlerImpl) GetOwnerHistory(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")
	if ownerID == "" {
		response.BadRequest(w, "Owner ID is required", nil)
		return
	}

	result, err := h.profitService.GetOwnerHistory(r.Context(), ownerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
