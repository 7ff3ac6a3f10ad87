package verifyresettoken

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"studiobooking/internal/core/domain/user"
	service "studiobooking/internal/core/services/verify_reset_token"
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

func TestVerifyResetTokenHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceError   error
		expectedStatus int
		expectedCode   string
		expectedInput  *service.Input
	}{
		{
			id:             "valid-token",
			body:           `{"user_id": "user-1", "token": "c0ffee"}`,
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				UserID: user.ID("user-1"),
				Token:  user.ResetToken("c0ffee"),
			},
		},
		{
			id:             "invalid-json",
			body:           `{"user_id": `,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_PARAMETERS",
		},
		{
			id:             "missing-user-id",
			body:           `{"token": "c0ffee"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_PARAMETERS",
		},
		{
			id:             "missing-token",
			body:           `{"user_id": "user-1"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_PARAMETERS",
		},
		{
			id:             "invalid-token",
			body:           `{"user_id": "user-1", "token": "c0ffee"}`,
			serviceError:   user.ErrInvalidResetToken,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			id:             "internal-error",
			body:           `{"user_id": "user-1", "token": "c0ffee"}`,
			serviceError:   assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "SERVER_ERROR",
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/auth/password_reset/verify", strings.NewReader(testcase.body))
			if err != nil {
				t.Fatal(err)
			}

			service := &stubService{err: testcase.serviceError}
			rr := httptest.NewRecorder()
			handler := New(service)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			if testcase.expectedInput != nil {
				assert.Equal(t, testcase.expectedInput, service.input)
			}
			if testcase.expectedStatus == http.StatusOK {
				body := struct {
					Valid bool `json:"valid"`
				}{}
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.True(t, body.Valid)
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
