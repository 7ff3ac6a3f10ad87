package services

import (
	"studiobooking/internal/app/deps"
	dauth "studiobooking/internal/core/domain/auth"
	drl "studiobooking/internal/core/domain/rate_limiter"
	"studiobooking/internal/core/services"
	"studiobooking/internal/core/services/auth"
	completepasswordreset "studiobooking/internal/core/services/complete_password_reset"
	getuser "studiobooking/internal/core/services/get_user"
	listusers "studiobooking/internal/core/services/list_users"
	ratelimiting "studiobooking/internal/core/services/rate_limiting"
	requestpasswordreset "studiobooking/internal/core/services/request_password_reset"
	toggleadminstatus "studiobooking/internal/core/services/toggle_admin_status"
	updateuser "studiobooking/internal/core/services/update_user"
	verifyresettoken "studiobooking/internal/core/services/verify_reset_token"
)

type Services struct {
	RequestPasswordReset  services.Service[requestpasswordreset.Input, requestpasswordreset.Result]
	VerifyResetToken      services.Service[verifyresettoken.Input, verifyresettoken.Result]
	CompletePasswordReset services.Service[completepasswordreset.Input, completepasswordreset.Result]

	ListUsers         services.Service[listusers.Input, listusers.Result]
	GetUser           services.Service[getuser.Input, getuser.Result]
	UpdateUser        services.Service[updateuser.Input, updateuser.Result]
	ToggleAdminStatus services.Service[toggleadminstatus.Input, toggleadminstatus.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.RequestPasswordReset = ratelimiting.WithRateLimiting[requestpasswordreset.Input, requestpasswordreset.Result](
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		requestpasswordreset.New(
			deps.Logger,
			deps.Alerter,
			deps.UserRepository,
			deps.PasswordResetRepository,
			deps.ResetTokenGenerator,
			deps.ResetTokenSender,
			deps.Config.PasswordResetValidDuration,
			deps.Now,
		),
	)
	s.VerifyResetToken = verifyresettoken.New(
		deps.Logger,
		deps.PasswordResetRepository,
		deps.Now,
	)
	s.CompletePasswordReset = completepasswordreset.New(
		deps.Logger,
		deps.Alerter,
		deps.UserRepository,
		deps.PasswordResetRepository,
		deps.PasswordHasher,
		deps.Now,
	)

	s.ListUsers = auth.WithAuthorization[listusers.Input, listusers.Result](
		dauth.CapabilityAdmin,
		listusers.New(
			deps.Logger,
			deps.UserRepository,
		),
	)
	s.GetUser = auth.WithAuthorization[getuser.Input, getuser.Result](
		dauth.CapabilityAdmin,
		getuser.New(
			deps.Logger,
			deps.UserRepository,
		),
	)
	s.UpdateUser = auth.WithAuthorization[updateuser.Input, updateuser.Result](
		dauth.CapabilityAdmin,
		updateuser.New(
			deps.Logger,
			deps.UserRepository,
			deps.Now,
		),
	)
	s.ToggleAdminStatus = auth.WithAuthorization[toggleadminstatus.Input, toggleadminstatus.Result](
		dauth.CapabilityAdmin,
		toggleadminstatus.New(
			deps.Logger,
			deps.UserRepository,
			deps.Now,
		),
	)

	return s
}
