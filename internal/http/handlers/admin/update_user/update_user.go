package updateuser

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"studiobooking/internal/core/domain/auth"
	c "studiobooking/internal/core/domain/common"
	e "studiobooking/internal/core/domain/errors"
	"studiobooking/internal/core/domain/user"
	"studiobooking/internal/core/services"
	service "studiobooking/internal/core/services/update_user"
	"studiobooking/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
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

type Input struct {
	FullName *string `json:"full_name"`
	IsActive *bool   `json:"is_active"`
}

type Result struct {
	User response.User `json:"user"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.FullName, validation.Length(0, 512)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		response.RenderInvalidParameters(rw, "user ID is required")
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderInvalidParameters(rw, "invalid request data")
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderInvalidParameters(rw, err.Error())
		return
	}
	if input.FullName == nil && input.IsActive == nil {
		response.RenderInvalidParameters(rw, "at least one field must be provided")
		return
	}

	serviceInput := service.Input{UserID: user.ID(userID)}
	if input.FullName != nil {
		serviceInput.FullName = c.NewOptional(*input.FullName, true)
	}
	if input.IsActive != nil {
		serviceInput.IsActive = c.NewOptional(*input.IsActive, true)
	}

	result, err := h.service.Run(r.Context(), serviceInput)
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
