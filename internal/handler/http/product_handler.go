package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/shop-backend/internal/category"
	"github.com/vasiliy-maslov/shop-backend/internal/product"
)

type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Description string  `json:"description" validate:"required,min=1"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Weight      float64 `json:"weight" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
}

type ProductHandler struct {
	service    product.Service
	categories category.Repository
	validate   *validator.Validate
}

func NewProductHandler(service product.Service, categories category.Repository) *ProductHandler {
	return &ProductHandler{
		service:    service,
		categories: categories,
		validate:   validator.New(),
	}
}

func (h *ProductHandler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list products via service")
		respondWithError(w, mapErrorToStatusCode(err), "Failed to get products")
		return
	}

	respondWithJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		var clientMessage string
		if errors.Is(err, product.ErrNotFound) {
			clientMessage = "Product doesn't exist"
		} else {
			log.Error().Err(err).Str("product_id", id).Msg("Failed to get product via service")
			clientMessage = "Failed to get product"
		}

		respondWithError(w, mapErrorToStatusCode(err), clientMessage)
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	requestPayload, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	created, err := h.service.Create(r.Context(), &product.Product{
		Name:        requestPayload.Name,
		Description: requestPayload.Description,
		Price:       requestPayload.Price,
		Weight:      requestPayload.Weight,
		Category:    requestPayload.Category,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create product via service")
		respondWithError(w, mapErrorToStatusCode(err), "Failed to create product")
		return
	}

	// Неизвестная категория: сервис молча вернул nil без ошибки.
	if created == nil {
		respondWithError(w, http.StatusBadRequest, "Product creation failed")
		return
	}

	respondWithJSON(w, http.StatusOK, created)
}

func (h *ProductHandler) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	requestPayload, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	updatedID, err := h.service.Update(r.Context(), id, product.UpdateInput{
		Name:        requestPayload.Name,
		Description: requestPayload.Description,
		Price:       requestPayload.Price,
		Weight:      requestPayload.Weight,
		Category:    requestPayload.Category,
	})
	if err != nil {
		var clientMessage string
		switch {
		case errors.Is(err, product.ErrNotFound):
			clientMessage = "Product not found"
		case errors.Is(err, product.ErrCategoryNotFound):
			clientMessage = "Category does not exist"
		default:
			log.Error().Err(err).Str("product_id", id).Msg("Failed to update product via service")
			clientMessage = "Failed to update product"
		}

		respondWithError(w, mapErrorToStatusCode(err), clientMessage)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"id": updatedID})
}

func (h *ProductHandler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list categories")
		respondWithError(w, http.StatusInternalServerError, "Failed to get categories")
		return
	}

	respondWithJSON(w, http.StatusOK, categories)
}

func (h *ProductHandler) decodeProduct(w http.ResponseWriter, r *http.Request) (ProductRequest, bool) {
	var requestPayload ProductRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode product request body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return ProductRequest{}, false
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
		return ProductRequest{}, false
	}

	return requestPayload, true
}
