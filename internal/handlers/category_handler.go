package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"siteledger/internal/audit"
	apperrors "siteledger/internal/errors"
	"siteledger/internal/ledger"
)

// CategoryHandler handles ledger category requests.
type CategoryHandler struct {
	ledgerService ledger.Servicer
	auditTrail    *audit.Trail
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(ledgerService ledger.Servicer, auditTrail *audit.Trail) *CategoryHandler {
	return &CategoryHandler{ledgerService: ledgerService, auditTrail: auditTrail}
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// ListCategories lists the ledger categories
// @Summary     List categories
// @Description List the transaction categories known to the ledger
// @Tags        categories
// @Produce     json
// @Success     200 {object} map[string]interface{} "Categories"
// @Failure     502 {object} ErrorResponse "Upstream fetch failed"
// @Router      /daily/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.ledgerService.Categories(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory appends a new category
// @Summary     Create a category
// @Description Create a new transaction category through the ledger service
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Upstream rejected the category"
// @Router      /daily/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.ledgerService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditTrail.Record("CREATE_CATEGORY", "category", category.Name, c.ClientIP(), nil)

	c.JSON(http.StatusCreated, gin.H{"category": category})
}
