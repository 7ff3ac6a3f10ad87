package listusers

import (
	"errors"
	"net/http"
	"studiobooking/internal/core/domain/auth"
	e "studiobooking/internal/core/domain/errors"
	"studiobooking/internal/core/services"
	service "studiobooking/internal/core/services/list_users"
	"studiobooking/internal/http/handlers/response"
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
	Users []response.User `json:"users"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if errors.Is(err, auth.ErrUnauthenticated) {
		response.RenderUnauthenticated(rw)
		return
	}
	if errors.Is(err, auth.ErrForbidden) {
		response.RenderForbidden(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	users := make([]response.User, len(result.Users))
	for ix, domainUser := range result.Users {
		users[ix].FromDomainUser(domainUser)
	}
	response.Render(rw, Result{Users: users}, http.StatusOK)
}
