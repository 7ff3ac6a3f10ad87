package getuser

import (
	"errors"
	"net/http"
	"studiobooking/internal/core/domain/auth"
	e "studiobooking/internal/core/domain/errors"
	"studiobooking/internal/core/domain/user"
	"studiobooking/internal/core/services"
	service "studiobooking/internal/core/services/get_user"
	"studiobooking/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	User response.User `json:"user"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		response.RenderInvalidParameters(rw, "user ID is required")
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{UserID: user.ID(userID)})
	if errors.Is(err, auth.ErrUnauthenticated) {
		response.RenderUnauthenticated(rw)
		return
	}
	if errors.Is(err, auth.ErrForbidden) {
		response.RenderForbidden(rw)
		return
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderError(rw, response.CODE_USER_NOT_FOUND, "user does not exist", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	res := Result{}
	res.User.FromDomainUser(result.User)
	response.Render(rw, res, http.StatusOK)
}
