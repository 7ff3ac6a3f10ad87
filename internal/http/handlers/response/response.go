package response

import (
	"encoding/json"
	"net/http"
)

const (
	CODE_INVALID_PARAMETERS  = "INVALID_PARAMETERS"
	CODE_WEAK_PASSWORD       = "WEAK_PASSWORD"
	CODE_INVALID_TOKEN       = "INVALID_TOKEN"
	CODE_UNAUTHENTICATED     = "UNAUTHENTICATED"
	CODE_FORBIDDEN           = "FORBIDDEN"
	CODE_USER_NOT_FOUND      = "USER_NOT_FOUND"
	CODE_RATE_LIMIT_EXCEEDED = "RATE_LIMIT_EXCEEDED"
	CODE_SERVER_ERROR        = "SERVER_ERROR"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func RenderUnauthenticated(rw http.ResponseWriter) {
	RenderError(rw, CODE_UNAUTHENTICATED, "authentication required", http.StatusUnauthorized)
}

func RenderForbidden(rw http.ResponseWriter) {
	RenderError(rw, CODE_FORBIDDEN, "insufficient permissions", http.StatusForbidden)
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, CODE_SERVER_ERROR, "internal error", http.StatusInternalServerError)
}

func RenderRateLimitExceeded(rw http.ResponseWriter) {
	RenderError(rw, CODE_RATE_LIMIT_EXCEEDED, "rate limit exceeded", http.StatusTooManyRequests)
}

func RenderInvalidParameters(rw http.ResponseWriter, msg string) {
	RenderError(rw, CODE_INVALID_PARAMETERS, msg, http.StatusBadRequest)
}

func RenderError(rw http.ResponseWriter, code string, msg string, status int) {
	Render(rw, errorResponse{Code: code, Message: msg}, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
