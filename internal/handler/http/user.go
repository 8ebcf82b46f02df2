package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/timeclock-hq/timeclock-backend-go/internal/domain/user"
	"github.com/timeclock-hq/timeclock-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{
		userService: userService,
	}
}

// Get implements UserHandler.
func (h *userHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Invalid user ID", nil)
		return
	}

	result, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, user.UserResponse{
		ID:        result.ID,
		Name:      result.Name,
		Email:     result.Email,
		CompanyID: result.CompanyID,
		IsAdmin:   result.IsAdmin,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	})
}

// Create implements UserHandler. Accounts come from the identity system, so
// the service always rejects this; the route exists to answer with a clear
// error instead of a 404.
func (h *userHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var u user.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if _, err := h.userService.CreateUser(r.Context(), u); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created", nil)
}
