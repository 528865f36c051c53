package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookwise/config"
	"bookwise/services/memory"
	"bookwise/utils"
)

// MemoryHandler exposes the continuity store for inspection and reset.
type MemoryHandler struct {
	Store memory.MemoryStore
}

// NewMemoryHandler returns a handler backed by the given store.
func NewMemoryHandler(store memory.MemoryStore) *MemoryHandler {
	return &MemoryHandler{Store: store}
}

// GetMemory handles GET /api/memory/:userID. The domain defaults to the
// configured one and can be overridden with ?domain=.
func (h *MemoryHandler) GetMemory(c *gin.Context) {
	userID := c.Param("userID")
	domain := c.DefaultQuery("domain", config.AppConfig.DefaultDomain)

	state, err := h.Store.Get(c.Request.Context(), domain, userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read memory", err.Error())
		return
	}
	if state == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "no remembered state for user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"key":     memory.Key(domain, userID),
		"state":   state,
		"summary": memory.Summarize(state),
	})
}

// ClearMemory handles DELETE /api/memory/:userID.
func (h *MemoryHandler) ClearMemory(c *gin.Context) {
	userID := c.Param("userID")
	domain := c.DefaultQuery("domain", config.AppConfig.DefaultDomain)

	if err := h.Store.Clear(c.Request.Context(), domain, userID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear memory", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "memory cleared"})
}
