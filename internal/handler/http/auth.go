package http

import (
	"encoding/json"
	"net/http"

	"github.com/insightai/split-backend-go/internal/domain/auth"
	"github.com/insightai/split-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	OwnerSignup(w http.ResponseWriter, r *http.Request)
	OwnerLogin(w http.ResponseWriter, r *http.Request)
	WorkerSignup(w http.ResponseWriter, r *http.Request)
	WorkerLogin(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

func (h *authHandlerImpl) OwnerSignup(w http.ResponseWriter, r *http.Request) {
	var req auth.OwnerSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.RegisterOwner(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Owner registered successfully", result)
}

func (h *authHandlerImpl) OwnerLogin(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.LoginOwner(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *authHandlerImpl) WorkerSignup(w http.ResponseWriter, r *http.Request) {
	var req auth.WorkerSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.RegisterWorker(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker registered successfully", result)
}

func (h *authHandlerImpl) WorkerLogin(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.LoginWorker(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
