package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/token"
	"github.com/timeclock-hq/timeclock-backend-go/internal/handler/http/response"
)

type TokenHandler interface {
	Issue(w http.ResponseWriter, r *http.Request)
	Redeem(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type tokenHandlerImpl struct {
	tokenService token.TokenService
}

func NewTokenHandler(tokenService token.TokenService) TokenHandler {
	return &tokenHandlerImpl{
		tokenService: tokenService,
	}
}

// Issue implements TokenHandler.
func (h *tokenHandlerImpl) Issue(w http.ResponseWriter, r *http.Request) {
	var req token.IssueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	ttl, err := time.ParseDuration(req.TTL)
	if err != nil {
		response.BadRequest(w, "Invalid ttl", nil)
		return
	}

	result, err := h.tokenService.IssueToken(r.Context(), req.UserID, req.Purpose, ttl)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Token issued", mapTokenToResponse(result))
}

// Redeem implements TokenHandler.
func (h *tokenHandlerImpl) Redeem(w http.ResponseWriter, r *http.Request) {
	var req token.RedeemTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.tokenService.RedeemToken(r.Context(), req.Token)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Token redeemed", mapTokenToResponse(result))
}

// Delete implements TokenHandler. Tokens are audit records; the service
// always rejects this, and the route reports that instead of a 404.
func (h *tokenHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid token ID", nil)
		return
	}

	if err := h.tokenService.DeleteToken(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Token deleted", nil)
}

func mapTokenToResponse(t token.ConfirmationToken) token.TokenResponse {
	return token.TokenResponse{
		ID:        t.ID,
		Token:     t.Token,
		UserID:    t.UserID,
		Purpose:   t.Purpose,
		ExpiresAt: t.ExpiresAt,
		UsedAt:    t.UsedAt,
		CreatedAt: t.CreatedAt,
	}
}
