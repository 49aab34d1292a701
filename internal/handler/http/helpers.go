package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/shop-backend/internal/auth"
	"github.com/vasiliy-maslov/shop-backend/internal/order"
	"github.com/vasiliy-maslov/shop-backend/internal/product"
	"github.com/vasiliy-maslov/shop-backend/internal/user"
)

// ValidationErrorResponse — ответ на невалидный payload.
type ValidationErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

// respondWithError отправляет JSON ошибку
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON отправляет JSON ответ
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	details := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		details[fieldErr.Field()] = fmt.Sprintf("failed on the '%s' rule", fieldErr.Tag())
	}
	return details
}

func mapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, user.ErrNotFound),
		errors.Is(err, product.ErrNotFound),
		errors.Is(err, order.ErrNotFound),
		errors.Is(err, order.ErrStatusNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrEmailExists),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, product.ErrCategoryNotFound),
		errors.Is(err, order.ErrOrderedProductsImmutable),
		errors.Is(err, order.ErrOrderCancelled),
		errors.Is(err, order.ErrIncorrectStatus),
		errors.Is(err, order.ErrProductMissing),
		errors.Is(err, order.ErrQuantityNotInteger),
		errors.Is(err, order.ErrQuantityLessThanOne):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrTokenPayload):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
