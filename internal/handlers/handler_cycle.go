package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/centsible/centsible_backend/internal/apperrors"
	"github.com/centsible/centsible_backend/internal/core/domain"
	portssvc "github.com/centsible/centsible_backend/internal/core/ports/services"
	"github.com/centsible/centsible_backend/internal/dto"
	"github.com/centsible/centsible_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cycleHandler handles HTTP requests related to cycle runs.
type cycleHandler struct {
	cycleService portssvc.CycleSvcFacade
}

// newCycleHandler creates a new cycleHandler.
func newCycleHandler(cs portssvc.CycleSvcFacade) *cycleHandler {
	return &cycleHandler{cycleService: cs}
}

// registerCycleRoutes registers routes related to cycle runs and the audit trail.
func registerCycleRoutes(rg *gin.RouterGroup, cycleService portssvc.CycleSvcFacade) {
	h := newCycleHandler(cycleService)

	cycles := rg.Group("/cycles")
	{
		cycles.POST("/run", h.runCycle)
		cycles.GET("/runs", h.listRuns)
		cycles.GET("/:cycleKey/run", h.getRunForCycle)
	}
	rg.GET("/audit", h.listAuditRecords)
}

func (h *cycleHandler) runCycle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RunCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RunCycle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	closeMonth := true
	if req.CloseMonth != nil {
		closeMonth = *req.CloseMonth
	}

	cmd := portssvc.RunCycleCommand{
		UserID:         userID,
		CycleKey:       domain.CycleKey(req.CycleKey),
		Source:         domain.CycleSource(req.Source),
		IdempotencyKey: req.IdempotencyKey,
		CloseMonth:     closeMonth,
	}

	run, err := h.cycleService.RunCycle(c.Request.Context(), cmd)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error running cycle", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to run cycle", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to run cycle"})
		return
	}

	logger.Info("Cycle run finished",
		slog.String("run_id", run.RunID),
		slog.String("cycle_key", string(run.CycleKey)),
		slog.String("status", string(run.Status)),
	)
	c.JSON(http.StatusOK, dto.ToCycleRunResponse(run))
}

func (h *cycleHandler) getRunForCycle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cycleKeyParam := c.Param("cycleKey")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	cycleKey, err := domain.ParseCycleKey(cycleKeyParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid cycle key: " + cycleKeyParam})
		return
	}

	run, err := h.cycleService.GetRunForCycle(c.Request.Context(), userID, cycleKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No completed run for cycle " + cycleKeyParam})
			return
		}
		logger.Error("Failed to get run for cycle", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve run"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCycleRunResponse(run))
}

func (h *cycleHandler) listRuns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	runs, err := h.cycleService.ListRuns(c.Request.Context(), userID, limit)
	if err != nil {
		logger.Error("Failed to list runs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list runs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": dto.ToCycleRunResponses(runs)})
}

func (h *cycleHandler) listAuditRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	records, err := h.cycleService.ListAuditRecords(c.Request.Context(), userID, limit)
	if err != nil {
		logger.Error("Failed to list audit records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list audit records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": dto.ToAuditRecordResponses(records)})
}
