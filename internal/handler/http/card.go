package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/card"
	"github.com/timeclock-hq/timeclock-backend-go/internal/handler/http/response"
)

type CardHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type cardHandlerImpl struct {
	cardService card.CardService
}

func NewCardHandler(cardService card.CardService) CardHandler {
	return &cardHandlerImpl{
		cardService: cardService,
	}
}

// Create implements CardHandler.
func (h *cardHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req card.CreateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.cardService.CreateCard(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Card created", result)
}

// Get implements CardHandler.
func (h *cardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid card ID", nil)
		return
	}

	result, err := h.cardService.GetCard(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements CardHandler.
func (h *cardHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter card.CardFilter

	if v := r.URL.Query().Get("user_id"); v != "" {
		filter.UserID = &v
	}
	if v := r.URL.Query().Get("company_id"); v != "" {
		companyID, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Invalid company_id", nil)
			return
		}
		filter.CompanyID = &companyID
	}
	if v := r.URL.Query().Get("type"); v != "" {
		filter.Type = &v
	}
	filter.IncludeDeleted = r.URL.Query().Get("include_deleted") == "true"
	if v := r.URL.Query().Get("page"); v != "" {
		filter.Page, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}

	result, err := h.cardService.ListCards(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements CardHandler.
func (h *cardHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid card ID", nil)
		return
	}

	adminID, err := adminIDFromContext(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	req := card.DeleteCardRequest{ID: id, AdminID: adminID}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.cardService.DeleteCard(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Card deleted", nil)
}
