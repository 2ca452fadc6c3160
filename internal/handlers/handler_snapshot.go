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

// snapshotHandler handles HTTP requests related to month-close snapshots.
type snapshotHandler struct {
	snapshotService portssvc.SnapshotSvcFacade
}

// newSnapshotHandler creates a new snapshotHandler.
func newSnapshotHandler(ss portssvc.SnapshotSvcFacade) *snapshotHandler {
	return &snapshotHandler{snapshotService: ss}
}

// registerSnapshotRoutes registers routes related to snapshots.
func registerSnapshotRoutes(rg *gin.RouterGroup, snapshotService portssvc.SnapshotSvcFacade) {
	h := newSnapshotHandler(snapshotService)

	snapshots := rg.Group("/snapshots")
	{
		snapshots.POST("/:cycleKey/close", h.closeMonth)
		snapshots.GET("/:cycleKey", h.getSnapshot)
		snapshots.GET("", h.listSnapshots)
	}
}

func (h *snapshotHandler) closeMonth(c *gin.Context) {
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

	snapshot, err := h.snapshotService.CloseMonth(c.Request.Context(), userID, cycleKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to close month", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to close month"})
		return
	}

	logger.Info("Month closed", slog.String("cycle_key", string(cycleKey)), slog.String("snapshot_id", snapshot.SnapshotID))
	c.JSON(http.StatusOK, dto.ToSnapshotResponse(snapshot))
}

func (h *snapshotHandler) getSnapshot(c *gin.Context) {
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

	snapshot, err := h.snapshotService.GetSnapshot(c.Request.Context(), userID, cycleKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Snapshot not found"})
			return
		}
		logger.Error("Failed to get snapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve snapshot"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSnapshotResponse(snapshot))
}

func (h *snapshotHandler) listSnapshots(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	snapshots, err := h.snapshotService.ListSnapshots(c.Request.Context(), userID, limit)
	if err != nil {
		logger.Error("Failed to list snapshots", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list snapshots"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshots": dto.ToSnapshotResponses(snapshots)})
}
