package completepasswordreset

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"studiobooking/internal/core/domain/user"
	service "studiobooking/internal/core/services/complete_password_reset"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	return result, s.err
}

func TestCompletePasswordResetHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceError   error
		expectedStatus int
		expectedCode   string
	}{
		{
			id:             "success",
			body:           `{"user_id": "user-1", "token": "c0ffee", "password": "new password"}`,
			expectedStatus: http.StatusOK,
		},
		{
			id:             "invalid-json",
			body:           `{"user_id": `,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_PARAMETERS",
		},
		{
			id:             "missing-token",
			body:           `{"user_id": "user-1", "password": "new password"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_PARAMETERS",
		},
		{
			id:             "weak-password",
			body:           `{"user_id": "user-1", "token": "c0ffee", "password": "short"}`,
			serviceError:   user.ErrPasswordIsTooWeak,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "WEAK_PASSWORD",
		},
		{
			id:             "invalid-token",
			body:           `{"user_id": "user-1", "token": "c0ffee", "password": "new password"}`,
			serviceError:   user.ErrInvalidResetToken,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			id:             "internal-error",
			body:           `{"user_id": "user-1", "token": "c0ffee", "password": "new password"}`,
			serviceError:   assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "SERVER_ERROR",
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("PUT", "/auth/password_reset", strings.NewReader(testcase.body))
			if err != nil {
				t.Fatal(err)
			}

			service := &stubService{err: testcase.serviceError}
			rr := httptest.NewRecorder()
			handler := New(service)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			if testcase.expectedStatus == http.StatusOK {
				body := struct {
					Message string `json:"message"`
				}{}
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.NotEmpty(t, body.Message)
			}
			if testcase.expectedCode != "" {
				body := struct {
					Code string `json:"code"`
				}{}
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, testcase.expectedCode, body.Code)
			}
		})
	}
}
