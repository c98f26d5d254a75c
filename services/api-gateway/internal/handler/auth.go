package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taskbridgehq/taskbridge-api/services/api-gateway/internal/middleware"
	"github.com/taskbridgehq/taskbridge-api/services/api-gateway/internal/payload"
	authpbv1 "github.com/taskbridgehq/taskbridge-api/shared/protos/auth/v1"
	"github.com/taskbridgehq/taskbridge-api/shared/utilities"
)

// Routes returns the router for the auth endpoints. Only /me sits behind the
// authentication middleware; everything else is reachable anonymously.
func (h *AuthHTTPHandler) Routes(requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", h.signUp)
	r.Post("/login", h.logIn)
	r.Post("/2fa/verify", h.verifyTwoFactor)
	r.Post("/verify-email", h.verifyEmail)
	r.Get("/verify-email", h.verifyEmailLink)
	r.Post("/password-reset/request", h.requestPasswordReset)
	r.Post("/password-reset", h.resetPassword)
	r.Post("/google", h.googleLogin)
	r.Post("/refresh", h.refreshToken)
	r.Post("/logout", h.logout)
	r.With(requireAuth).Get("/me", h.me)

	return r
}

func (h *AuthHTTPHandler) signUp(w http.ResponseWriter, r *http.Request) {
	var req payload.SignUpRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	ctx := utilities.ForwardHTTPHeaders(r.Context(), r)
	resp, err := h.authClient.SignUp(ctx, &authpbv1.SignUpRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		h.writeGRPCError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, payload.MessageResponse{Message: resp.GetMessage()})
}

func (h *AuthHTTPHandler) logIn(w http.ResponseWriter, r *http.Request) {
	var req payload.LogInRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	ctx := utilities.ForwardHTTPHeaders(r.Context(), r)
	resp, err := h.authClient.LogIn(ctx, &authpbv1.LogInRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeGRPCError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, payload.LogInResponse{
		Requires2FA: resp.GetRequires_2Fa(),
		UserID:      resp.GetUserId(),
		Message:     "A verification code was sent to your email.",
	})
}

func (h *AuthHTTPHandler) verifyTwoFactor(w http.ResponseWriter, r *http.Request) {
	var req payload.VerifyTwoFactorRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	ctx := utilities.ForwardHTTPHeaders(r.Context(), r)
	resp, err := h.authClient.VerifyTwoFactor(ctx, &authpbv1.VerifyTwoFactorRequest{
		UserId: req.UserID,
		Code:   req.Code,
	})
	if err != nil {
		h.writeGRPCError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, payload.TokenPairResponse{
		AccessToken:  resp.GetAccessToken(),
		RefreshToken: resp.GetRefreshToken(),
	})
}

func (h *AuthHTTPHandler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	var req payload.VerifyEmailRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	ctx := utilities.ForwardHTTPHeaders(r.Context(), r)
	resp, err := h.authClient.VerifyEmail(ctx, &authpbv1.VerifyEmailRequest{Token: req.Token})
	if err != nil {
		h.writeGRPCError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, payload.MessageResponse{Message: resp.GetMessage()})
}

// verifyEmailLink serves the link clicked from the verification email.
func (h *AuthHTTPHandler) verifyEmailLink(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		h.writeError(w, http.StatusBadRequest, "token is required")
		return
	}

	ctx := utilities.ForwardHTTPHeaders(r.Context(), r)
	resp, err := h.authClient.VerifyEmail(ctx, &authpbv1.VerifyEmailRequest{Token: token})
	if err != nil {
		h.writeGRPCError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, payload.MessageResponse{Message: resp.GetMessage()})
}

func (h *AuthHTTPHandler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req payload.RequestPasswordResetRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	ctx := utilities.ForwardHTTPHeaders(r.Context(), r)
	resp, err := h.authClient.RequestPasswordReset(ctx, &authpbv1.RequestPasswordResetRequest{Email: req.Email})
	if err != nil {
		h.writeGRPCError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, payload.MessageResponse{Message: resp.GetMessage()})
}

func (h *AuthHTTPHandler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req payload.ResetPasswordRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	ctx := utilities.ForwardHTTPHeaders(r.Context(), r)
	resp, err := h.authClient.ResetPassword(ctx, &authpbv1.ResetPasswordRequest{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.writeGRPCError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, payload.MessageResponse{Message: resp.GetMessage()})
}

func (h *AuthHTTPHandler) googleLogin(w http.ResponseWriter, r *http.Request) {
	var req payload.GoogleLoginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	identity, err := h.google.VerifyIDToken(r.Context(), req.IDToken)
	if err != nil {
		h.logger.Warn().Err(err).Msg("google id token verification failed")
		h.writeError(w, http.StatusUnauthorized, "invalid google token")
		return
	}

	ctx := utilities.ForwardHTTPHeaders(r.Context(), r)
	resp, err := h.authClient.SocialLogin(ctx, &authpbv1.SocialLoginRequest{
		Email:      identity.Email,
		Name:       req.Name,
		Provider:   "google",
		ProviderId: identity.Subject,
	})
	if err != nil {
		h.writeGRPCError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, payload.LogInResponse{
		Requires2FA: resp.GetRequires_2Fa(),
		UserID:      resp.GetUserId(),
		Message:     "A verification code was sent to your email.",
	})
}

func (h *AuthHTTPHandler) refreshToken(w http.ResponseWriter, r *http.Request) {
	var req payload.RefreshTokenRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	ctx := utilities.ForwardHTTPHeaders(r.Context(), r)
	resp, err := h.authClient.RefreshToken(ctx, &authpbv1.RefreshTokenRequest{RefreshToken: req.RefreshToken})
	if err != nil {
		h.writeGRPCError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, payload.RefreshTokenResponse{AccessToken: resp.GetAccessToken()})
}

// logout succeeds no matter what the header carries. Invalidation is best
// effort on the service side.
func (h *AuthHTTPHandler) logout(w http.ResponseWriter, r *http.Request) {
	accessToken := bearerToken(r)

	ctx := utilities.ForwardHTTPHeaders(r.Context(), r)
	resp, err := h.authClient.Logout(ctx, &authpbv1.LogoutRequest{AccessToken: accessToken})
	if err != nil {
		h.writeGRPCError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, payload.MessageResponse{Message: resp.GetMessage()})
}

func (h *AuthHTTPHandler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	h.writeJSON(w, http.StatusOK, payload.MeResponse{
		UserID: identity.UserID,
		Email:  identity.Email,
		Role:   identity.Role,
	})
}

func bearerToken(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return parts[1]
}
