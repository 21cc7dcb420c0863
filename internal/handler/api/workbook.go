package api

import (
	"errors"
	"net/http"

	"blueprint-api/internal/domain/product"
	resdto "blueprint-api/internal/handler/dto/response"
	"blueprint-api/internal/handler/middleware"
	"blueprint-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WorkbookHandler struct {
	entitlements queries.EntitlementQueries
}

func NewWorkbookHandler(entitlements queries.EntitlementQueries) *WorkbookHandler {
	return &WorkbookHandler{
		entitlements: entitlements,
	}
}

// @Summary Product catalog
// @Description List all products with the caller's current access flags
// @Tags workbooks
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CatalogResponse
// @Failure 401 {object} map[string]string
// @Router /workbooks [get]
func (h *WorkbookHandler) Catalog(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	access := h.entitlements.Catalog(c.Request.Context(), userID)
	c.JSON(http.StatusOK, resdto.FromCatalog(access))
}

// @Summary Gated workbook content
// @Description Content descriptor for one product, gated by entitlement
// @Tags workbooks
// @Security BearerAuth
// @Produce json
// @Param product path string true "Product type"
// @Success 200 {object} resdto.WorkbookContentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workbooks/{product} [get]
func (h *WorkbookHandler) GetContent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	productType, err := product.Parse(c.Param("product"))
	if err != nil {
		if errors.Is(err, product.ErrUnknownProduct) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown product type",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if !h.entitlements.HasAccess(c.Request.Context(), userID, productType) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access to this content has expired or was never purchased",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromWorkbookContent(productType))
}
