package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bangshop/admin/internal/domain"
	"github.com/bangshop/admin/pkg/validate"
)

type createProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

// createProduct — POST /api/products. Второй шаг формы: URL изображения
// уже получен от /api/upload, здесь создаётся сама карточка.
func (h *Handler) createProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product := &domain.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	id, err := h.products.Create(c.Request.Context(), product)
	if err != nil {
		if errors.Is(err, validate.ErrInvalidProduct) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf(c.Request.Context(), "create product failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}
