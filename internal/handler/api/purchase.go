package api

import (
	"errors"
	"net/http"

	reqdto "blueprint-api/internal/handler/dto/request"
	resdto "blueprint-api/internal/handler/dto/response"
	"blueprint-api/internal/handler/middleware"
	"blueprint-api/internal/pkg/clock"
	"blueprint-api/internal/usecase/commands"
	"blueprint-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	purchaseCommands commands.PurchaseCommands
	entitlements     queries.EntitlementQueries
	clock            clock.Clock
}

func NewPurchaseHandler(purchaseCommands commands.PurchaseCommands, entitlements queries.EntitlementQueries, clock clock.Clock) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseCommands: purchaseCommands,
		entitlements:     entitlements,
		clock:            clock,
	}
}

// @Summary List purchases
// @Description List the caller's purchase rows
// @Tags purchases
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.PurchaseResponse
// @Failure 401 {object} map[string]string
// @Router /purchases [get]
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	views, err := h.entitlements.ListPurchases(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	now := h.clock.Now()
	result := make([]*resdto.PurchaseResponse, len(views))
	for i, view := range views {
		result[i] = resdto.FromPurchaseView(view, now)
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Verify purchase
// @Description Record a verified payment and schedule follow-up emails
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VerifyPurchaseRequest true "Verified payment"
// @Success 201 {object} resdto.VerifyPurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /purchases/verify [post]
func (h *PurchaseHandler) VerifyPurchase(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.VerifyPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.purchaseCommands.RecordPurchase(c.Request.Context(), commands.RecordPurchaseParams{
		UserID:      userID,
		ProductType: req.ProductType,
		SessionRef:  req.TrimmedSessionRef(),
		AmountCents: req.AmountCents,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUnknownProduct):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown product type",
			})
		case errors.Is(err, commands.ErrFreeProduct):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Product does not require purchase",
			})
		case errors.Is(err, commands.ErrSessionRefRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Payment session reference required",
			})
		case errors.Is(err, commands.ErrDuplicateSessionRef):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Session reference reused with different parameters",
			})
		case errors.Is(err, commands.ErrPurchaseInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Purchase verification is currently being processed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.VerifyPurchaseResponse{
		PurchaseID: result.PurchaseID,
		ExpiresAt:  result.ExpiresAt,
		Replayed:   result.IsReplayed,
	})
}
