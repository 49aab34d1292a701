package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/shop-backend/internal/auth"
)

type SignupRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"required,min=5,max=24"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse — схема пользователя в ответах. Хеш пароля наружу не уходит.
type UserResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type AuthHandler struct {
	service  auth.Service
	validate *validator.Validate
}

func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *AuthHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var requestPayload SignupRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode signup request body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !h.validatePayload(w, requestPayload) {
		return
	}

	createdUser, err := h.service.Signup(r.Context(), auth.SignupInput{
		FirstName:   requestPayload.FirstName,
		LastName:    requestPayload.LastName,
		Email:       requestPayload.Email,
		Password:    requestPayload.Password,
		PhoneNumber: requestPayload.PhoneNumber,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to sign up user via service")

		var clientMessage string
		if errors.Is(err, auth.ErrEmailExists) {
			clientMessage = "User with this email already exist"
		} else {
			clientMessage = "Failed to create user"
		}

		respondWithError(w, mapErrorToStatusCode(err), clientMessage)
		return
	}

	responsePayload := UserResponse{
		ID:          createdUser.ID,
		FirstName:   createdUser.FirstName,
		LastName:    createdUser.LastName,
		Email:       createdUser.Email,
		PhoneNumber: createdUser.PhoneNumber,
	}

	respondWithJSON(w, http.StatusOK, responsePayload)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var requestPayload LoginRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode login request body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !h.validatePayload(w, requestPayload) {
		return
	}

	tokens, err := h.service.Login(r.Context(), requestPayload.Email, requestPayload.Password)
	if err != nil {
		var clientMessage string
		if errors.Is(err, auth.ErrInvalidCredentials) {
			clientMessage = "Incorrect email or password"
		} else {
			log.Error().Err(err).Msg("Failed to log in user via service")
			clientMessage = "Failed to log in"
		}

		respondWithError(w, mapErrorToStatusCode(err), clientMessage)
		return
	}

	respondWithJSON(w, http.StatusOK, tokens)
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	u, ok := CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Missing authorization header")
		return
	}

	responsePayload := UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
	}

	respondWithJSON(w, http.StatusOK, responsePayload)
}

func (h *AuthHandler) validatePayload(w http.ResponseWriter, payload any) bool {
	err := h.validate.Struct(payload)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		respondWithJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:   "Validation failed",
			Details: formatValidationErrors(validationErrors),
		})
	} else {
		log.Error().Err(err).Msg("Unexpected error type during validation")
		respondWithError(w, http.StatusInternalServerError, "Internal validation error")
	}
	return false
}
