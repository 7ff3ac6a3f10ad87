package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"studiobooking/internal/app/deps"
	"studiobooking/internal/app/services"
	"studiobooking/internal/config"
	completepasswordreset "studiobooking/internal/core/services/complete_password_reset"
	getuser "studiobooking/internal/core/services/get_user"
	listusers "studiobooking/internal/core/services/list_users"
	requestpasswordreset "studiobooking/internal/core/services/request_password_reset"
	toggleadminstatus "studiobooking/internal/core/services/toggle_admin_status"
	updateuser "studiobooking/internal/core/services/update_user"
	verifyresettoken "studiobooking/internal/core/services/verify_reset_token"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService[T any, S any] struct {
	hasDeadline bool
}

func (s *stubService[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	_, s.hasDeadline = ctx.Deadline()
	return result, nil
}

func newTestDeps() *deps.Deps {
	return &deps.Deps{
		Config: &config.Config{
			Port:           9090,
			Secret:         "test-secret",
			RequestTimeout: 30 * time.Second,
			AllowedOrigins: []string{"*"},
		},
	}
}

func TestRequestContextCarriesDeadline(t *testing.T) {
	requestStub := &stubService[requestpasswordreset.Input, requestpasswordreset.Result]{}
	s := &services.Services{
		RequestPasswordReset:  requestStub,
		VerifyResetToken:      &stubService[verifyresettoken.Input, verifyresettoken.Result]{},
		CompletePasswordReset: &stubService[completepasswordreset.Input, completepasswordreset.Result]{},
		ListUsers:             &stubService[listusers.Input, listusers.Result]{},
		GetUser:               &stubService[getuser.Input, getuser.Result]{},
		UpdateUser:            &stubService[updateuser.Input, updateuser.Result]{},
		ToggleAdminStatus:     &stubService[toggleadminstatus.Input, toggleadminstatus.Result]{},
	}
	server := InitHttpServer(newTestDeps(), s)

	req, err := http.NewRequest(
		"POST",
		"/auth/password_reset/request",
		strings.NewReader(`{"email": "test@test.test"}`),
	)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, requestStub.hasDeadline)
}

func TestServerTimeoutsAreBounded(t *testing.T) {
	s := &services.Services{
		RequestPasswordReset:  &stubService[requestpasswordreset.Input, requestpasswordreset.Result]{},
		VerifyResetToken:      &stubService[verifyresettoken.Input, verifyresettoken.Result]{},
		CompletePasswordReset: &stubService[completepasswordreset.Input, completepasswordreset.Result]{},
		ListUsers:             &stubService[listusers.Input, listusers.Result]{},
		GetUser:               &stubService[getuser.Input, getuser.Result]{},
		UpdateUser:            &stubService[updateuser.Input, updateuser.Result]{},
		ToggleAdminStatus:     &stubService[toggleadminstatus.Input, toggleadminstatus.Result]{},
	}
	server := InitHttpServer(newTestDeps(), s)

	assert.Equal(t, "0.0.0.0:9090", server.Addr)
	assert.Positive(t, server.ReadTimeout)
	assert.Positive(t, server.ReadHeaderTimeout)
	assert.Positive(t, server.WriteTimeout)
	assert.Positive(t, server.IdleTimeout)
}
