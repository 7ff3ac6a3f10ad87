package requestpasswordreset

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "studiobooking/internal/core/domain/common"
	e "studiobooking/internal/core/domain/errors"
	ratelimiter "studiobooking/internal/core/domain/rate_limiter"
	"studiobooking/internal/core/services"
	service "studiobooking/internal/core/services/request_password_reset"
	"studiobooking/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service    services.Service[service.Input, service.Result]
	isTestMode bool
}

func New(
	service services.Service[service.Input, service.Result],
	isTestMode bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	Email string `json:"email"`
}

type result struct {
	Message string `json:"message"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
	)
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

	serviceResult, err := h.service.Run(
		r.Context(),
		service.Input{Email: c.NewEmail(input.Email)},
	)
	if err != nil {
		if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
			response.RenderRateLimitExceeded(rw)
			return
		}
		response.RenderInternalError(rw)
		return
	}

	if h.isTestMode && serviceResult.Token != "" {
		rw.Header().Set("x-test-password-reset-token", string(serviceResult.Token))
	}
	// Constant message regardless of whether the account exists.
	response.Render(
		rw,
		result{Message: "If the account exists, a password reset email has been sent."},
		http.StatusOK,
	)
}
