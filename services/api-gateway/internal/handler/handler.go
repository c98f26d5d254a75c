package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/taskbridgehq/taskbridge-api/services/api-gateway/internal/payload"
	"github.com/taskbridgehq/taskbridge-api/shared/provider"
	authpbv1 "github.com/taskbridgehq/taskbridge-api/shared/protos/auth/v1"
)

type AuthHTTPHandler struct {
	authClient authpbv1.AuthServiceClient
	google     *provider.GoogleOAuthProvider
	validate   *validator.Validate
	translator ut.Translator
	logger     *zerolog.Logger
}

// NewAuthHTTPHandler creates the HTTP handler that fronts the auth service.
func NewAuthHTTPHandler(
	authClient authpbv1.AuthServiceClient,
	google *provider.GoogleOAuthProvider,
	logger *zerolog.Logger,
) *AuthHTTPHandler {
	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		logger.Fatal().Err(err).Msg("failed to register validator translations")
	}

	return &AuthHTTPHandler{
		authClient: authClient,
		google:     google,
		validate:   validate,
		translator: translator,
		logger:     logger,
	}
}

// decodeAndValidate parses the JSON body into dst and validates it. It writes
// the error response itself and reports whether the request may proceed.
func (h *AuthHTTPHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fieldErrors := make(map[string]string, len(validationErrors))
			for _, fieldError := range validationErrors {
				fieldErrors[fieldError.Field()] = fieldError.Translate(h.translator)
			}

			h.writeJSON(w, http.StatusBadRequest, payload.ValidationErrorResponse{Errors: fieldErrors})
			return false
		}

		h.writeError(w, http.StatusBadRequest, "invalid request")
		return false
	}

	return true
}

func (h *AuthHTTPHandler) writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response body")
	}
}

func (h *AuthHTTPHandler) writeError(w http.ResponseWriter, statusCode int, message string) {
	h.writeJSON(w, statusCode, payload.ErrorResponse{Error: message})
}

// writeGRPCError translates a downstream gRPC error into an HTTP response.
func (h *AuthHTTPHandler) writeGRPCError(w http.ResponseWriter, err error) {
	st := status.Convert(err)

	var statusCode int
	switch st.Code() {
	case codes.InvalidArgument, codes.AlreadyExists:
		statusCode = http.StatusBadRequest
	case codes.Unauthenticated:
		statusCode = http.StatusUnauthorized
	case codes.PermissionDenied:
		statusCode = http.StatusForbidden
	case codes.NotFound:
		statusCode = http.StatusNotFound
	case codes.Unavailable:
		statusCode = http.StatusServiceUnavailable
	default:
		h.logger.Error().Err(err).Msg("downstream call failed")
		statusCode = http.StatusInternalServerError
	}

	message := st.Message()
	if statusCode >= http.StatusInternalServerError {
		message = "something went wrong"
	}

	h.writeError(w, statusCode, message)
}
