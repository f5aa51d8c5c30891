// internal/handlers/catalog.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/machineryhub/b2b-backend/internal/catalog"
	"github.com/machineryhub/b2b-backend/internal/models"
	"github.com/machineryhub/b2b-backend/internal/query"
	"github.com/machineryhub/b2b-backend/internal/store"
	"github.com/machineryhub/b2b-backend/internal/utils"
)

// syntheticBatchSize is how many demo rows one scrape call adds.
const syntheticBatchSize = 10

type CatalogHandler struct {
	service *catalog.Service
}

func NewCatalogHandler(service *catalog.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// GET /api/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	// Malformed numbers coerce to zero here and to defaults in Normalized.
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	criteria := query.Criteria{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Search:   c.Query("search"),
		Page:     page,
		PerPage:  perPage,
	}

	res, err := h.service.List(c.Request.Context(), criteria)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	products := res.Items
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"count":       res.Total,
		"page":        res.Page,
		"per_page":    res.PerPage,
		"total_pages": res.TotalPages,
		"products":    products,
	})
}

// GET /api/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.NotFoundResponse(c)
		return
	}

	product, err := h.service.GetDetail(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c)
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": product,
	})
}

// POST /api/contact
func (h *CatalogHandler) ContactSupplier(c *gin.Context) {
	var req catalog.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	message, err := h.service.Contact(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c)
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// POST /api/scrape
func (h *CatalogHandler) ScrapeProducts(c *gin.Context) {
	total, err := h.service.GenerateSyntheticBatch(c.Request.Context(), syntheticBatchSize)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        fmt.Sprintf("Successfully added %d new products", syntheticBatchSize),
		"total_products": total,
	})
}

// GET /api/stats
func (h *CatalogHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"total_products":  stats.TotalProducts,
		"total_suppliers": stats.TotalSuppliers,
		"categories":      stats.Categories,
		"locations":       stats.Locations,
	})
}
