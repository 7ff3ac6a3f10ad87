package verifyresettoken

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "studiobooking/internal/core/domain/errors"
	"studiobooking/internal/core/domain/user"
	"studiobooking/internal/core/services"
	service "studiobooking/internal/core/services/verify_reset_token"
	"studiobooking/internal/http/handlers/response"

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
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.UserID, validation.Required, validation.Length(0, 256)),
		validation.Field(&i.Token, validation.Required, validation.Length(0, 1024)),
	)
}

type result struct {
	Valid bool `json:"valid"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderInvalidParameters(rw, "invalid request data")
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderInvalidParameters(rw, err.Error())
		return
	}

	_, err := h.service.Run(
		r.Context(),
		service.Input{
			UserID: user.ID(input.UserID),
			Token:  user.ResetToken(input.Token),
		},
	)
	if errors.Is(err, user.ErrInvalidResetToken) {
		response.RenderError(rw, response.CODE_INVALID_TOKEN, "invalid or expired token", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, result{Valid: true}, http.StatusOK)
}
