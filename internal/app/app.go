package app

import (
	"fmt"
	"net/http"
	"studiobooking/internal/app/deps"
	"studiobooking/internal/app/services"
	getuser "studiobooking/internal/http/handlers/admin/get_user"
	listusers "studiobooking/internal/http/handlers/admin/list_users"
	toggleadminstatus "studiobooking/internal/http/handlers/admin/toggle_admin_status"
	updateuser "studiobooking/internal/http/handlers/admin/update_user"
	"studiobooking/internal/http/handlers/auth"
	completepasswordreset "studiobooking/internal/http/handlers/auth/complete_password_reset"
	requestpasswordreset "studiobooking/internal/http/handlers/auth/request_password_reset"
	verifyresettoken "studiobooking/internal/http/handlers/auth/verify_reset_token"

	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	authRouter := chi.NewRouter()
	authRouter.Method(
		http.MethodPost,
		"/password_reset/request",
		requestpasswordreset.New(s.RequestPasswordReset, isTestMode),
	)
	authRouter.Method(http.MethodPost, "/password_reset/verify", verifyresettoken.New(s.VerifyResetToken))
	authRouter.Method(http.MethodPut, "/password_reset", completepasswordreset.New(s.CompletePasswordReset))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.SetClaimsToContext([]byte(deps.Config.Secret)))
	adminRouter.Method(http.MethodGet, "/users", listusers.New(s.ListUsers))
	adminRouter.Method(http.MethodGet, "/users/{userID}", getuser.New(s.GetUser))
	adminRouter.Method(http.MethodPatch, "/users/{userID}", updateuser.New(s.UpdateUser))
	adminRouter.Method(http.MethodPost, "/users/{userID}/toggle-admin", toggleadminstatus.New(s.ToggleAdminStatus))

	router := chi.NewRouter()
	// Store and mail calls inherit this deadline via the request context.
	router.Use(middleware.Timeout(deps.Config.RequestTimeout))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/admin", adminRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler:           router,
		Addr:              address,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      deps.Config.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
