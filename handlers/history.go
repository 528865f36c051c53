package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	historyRepo "bookwise/database/repository/history"
	"bookwise/utils"
)

// HistoryHandler exposes archived resolutions.
type HistoryHandler struct {
	Repo historyRepo.ResolutionHistoryRepository
}

// NewHistoryHandler returns a handler backed by the given repository.
func NewHistoryHandler(repo historyRepo.ResolutionHistoryRepository) *HistoryHandler {
	return &HistoryHandler{Repo: repo}
}

// GetHistory handles GET /api/history/:userID, newest first.
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	userID := c.Param("userID")

	records, err := h.Repo.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch history", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID, "records": records})
}

// DeleteHistory handles DELETE /api/history/record/:id.
func (h *HistoryHandler) DeleteHistory(c *gin.Context) {
	id := c.Param("id")

	if err := h.Repo.DeleteByID(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete record", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record deleted"})
}
