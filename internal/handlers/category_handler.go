package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/categorizer"
	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/services"
)

// CategoryHandler exposes the expense categorizer.
type CategoryHandler struct {
	ledgerService services.LedgerServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(ledgerService services.LedgerServicer) *CategoryHandler {
	return &CategoryHandler{ledgerService: ledgerService}
}

// CategoriesResponse lists category labels and their keyword rules.
type CategoriesResponse struct {
	Categories []string           `json:"categories"`
	Rules      []categorizer.Rule `json:"rules"`
}

// ClassifyRequest represents the request payload for a categorizer preview.
type ClassifyRequest struct {
	Description string `json:"description" binding:"required,max=255" example:"Mercadona Gran Vía"`
}

// ClassifyResponse is the category a description would be filed under.
type ClassifyResponse struct {
	Description string `json:"description"`
	Category    string `json:"category"`
}

// GetCategories lists category labels in rule order
// @Summary     List categories
// @Description Category labels in rule order, Other last, with the keywords that select each one
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} CategoriesResponse "Categories"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoriesResponse{
		Categories: h.ledgerService.Categories(),
		Rules:      h.ledgerService.Rules(),
	})
}

// Classify previews the category of an expense description
// @Summary     Classify a description
// @Description Returns the category an expense with this counterparty would get
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ClassifyRequest true "Description to classify"
// @Success     200 {object} ClassifyResponse "Category"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories/classify [post]
func (h *CategoryHandler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, ClassifyResponse{
		Description: req.Description,
		Category:    h.ledgerService.ClassifyDescription(req.Description),
	})
}
