package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/shop-backend/internal/order"
)

type CreateOrderRequest struct {
	Email           string         `json:"email" validate:"required,email"`
	PhoneNumber     string         `json:"phone_number" validate:"required"`
	OrderedProducts map[string]int `json:"ordered_products" validate:"required"`
}

type OrderHandler struct {
	service  order.Service
	validate *validator.Validate
}

func NewOrderHandler(service order.Service) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *OrderHandler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.GetOrders(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list orders via service")
		respondWithError(w, mapErrorToStatusCode(err), "Failed to get orders")
		return
	}

	respondWithJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) handleListOrdersByStatus(w http.ResponseWriter, r *http.Request) {
	statusName := chi.URLParam(r, "id")

	orders, err := h.service.GetOrdersByStatus(r.Context(), statusName)
	if err != nil {
		var clientMessage string
		if errors.Is(err, order.ErrStatusNotFound) {
			clientMessage = "Status not found"
		} else {
			log.Error().Err(err).Str("status", statusName).Msg("Failed to list orders by status via service")
			clientMessage = "Failed to get orders"
		}

		respondWithError(w, mapErrorToStatusCode(err), clientMessage)
		return
	}

	respondWithJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var requestPayload CreateOrderRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode order request body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(requestPayload); err != nil {
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
		return
	}

	created, err := h.service.CreateOrder(r.Context(), order.CreateInput{
		Email:           requestPayload.Email,
		PhoneNumber:     requestPayload.PhoneNumber,
		OrderedProducts: requestPayload.OrderedProducts,
	})
	if err != nil {
		statusCode := mapErrorToStatusCode(err)

		var clientMessage string
		if statusCode == http.StatusBadRequest {
			clientMessage = err.Error()
		} else {
			log.Error().Err(err).Msg("Failed to create order via service")
			clientMessage = "Order creation failed"
		}

		respondWithError(w, statusCode, clientMessage)
		return
	}

	respondWithJSON(w, http.StatusOK, created)
}

// handleUpdateOrder принимает произвольный набор полей: их валидирует
// state machine заказа, а не схема запроса.
func (h *OrderHandler) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var fields map[string]any

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&fields); err != nil {
		log.Error().Err(err).Msg("Failed to decode order update body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updatedID, err := h.service.UpdateOrder(r.Context(), id, fields)
	if err != nil {
		statusCode := mapErrorToStatusCode(err)

		var clientMessage string
		switch {
		case errors.Is(err, order.ErrNotFound):
			clientMessage = "Order not found"
		case statusCode == http.StatusBadRequest:
			clientMessage = err.Error()
		default:
			log.Error().Err(err).Str("order_id", id).Msg("Failed to update order via service")
			clientMessage = "Failed to update order"
		}

		respondWithError(w, statusCode, clientMessage)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"id": updatedID})
}

func (h *OrderHandler) handleListStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.service.GetStatuses(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list statuses via service")
		respondWithError(w, mapErrorToStatusCode(err), "Failed to get statuses")
		return
	}

	respondWithJSON(w, http.StatusOK, statuses)
}
