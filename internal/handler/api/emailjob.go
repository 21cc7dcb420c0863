package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "blueprint-api/internal/handler/dto/request"
	resdto "blueprint-api/internal/handler/dto/response"
	"blueprint-api/internal/usecase/commands"
	"blueprint-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EmailJobHandler struct {
	deliveryCommands commands.DeliveryCommands
	deliveryQueries  queries.DeliveryQueries
}

func NewEmailJobHandler(deliveryCommands commands.DeliveryCommands, deliveryQueries queries.DeliveryQueries) *EmailJobHandler {
	return &EmailJobHandler{
		deliveryCommands: deliveryCommands,
		deliveryQueries:  deliveryQueries,
	}
}

// @Summary Drain due email jobs
// @Description Claim and deliver pending jobs whose scheduled time has passed
// @Tags jobs
// @Accept json
// @Produce json
// @Param X-Cron-Token header string true "Cron shared secret"
// @Param request body reqdto.DrainRequest false "Optional batch cap"
// @Success 200 {object} resdto.DrainResponse
// @Failure 401 {object} map[string]string
// @Router /internal/jobs/drain [post]
func (h *EmailJobHandler) Drain(c *gin.Context) {
	var req reqdto.DrainRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	result, err := h.deliveryCommands.DrainDue(c.Request.Context(), req.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to drain email jobs",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDrainResult(result))
}

// @Summary Requeue failed email jobs
// @Description Move errored jobs below the attempt cap back to pending
// @Tags jobs
// @Produce json
// @Param X-Cron-Token header string true "Cron shared secret"
// @Success 200 {object} resdto.RequeueResponse
// @Failure 401 {object} map[string]string
// @Router /internal/jobs/requeue [post]
func (h *EmailJobHandler) Requeue(c *gin.Context) {
	requeued, err := h.deliveryCommands.RequeueFailed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to requeue email jobs",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.RequeueResponse{Requeued: requeued})
}

// @Summary Get email job
// @Description Get one email job by ID
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} resdto.EmailJobResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/email-jobs/{id} [get]
func (h *EmailJobHandler) GetJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid job ID format",
		})
		return
	}

	job, err := h.deliveryQueries.GetJob(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrEmailJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Email job not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEmailJobView(job))
}

// @Summary List a user's email jobs
// @Description Keyset-paginated audit listing of one user's email jobs
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from previous page"
// @Success 200 {object} resdto.EmailJobPageResponse
// @Failure 400 {object} map[string]string
// @Router /admin/users/{id}/email-jobs [get]
func (h *EmailJobHandler) ListUserJobs(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
	}

	page, err := h.deliveryQueries.ListUserJobs(c.Request.Context(), userID, limit, c.Query("after"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cursor",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEmailJobPage(page))
}

// @Summary List a user's email logs
// @Description Dedup-ledger entries recorded for one user
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} resdto.EmailLogResponse
// @Failure 400 {object} map[string]string
// @Router /admin/users/{id}/email-logs [get]
func (h *EmailJobHandler) ListUserLogs(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	logs, err := h.deliveryQueries.ListUserLogs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result := make([]*resdto.EmailLogResponse, len(logs))
	for i, log := range logs {
		result[i] = resdto.FromEmailLogView(log)
	}
	c.JSON(http.StatusOK, result)
}
