package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookwise/models"
	"bookwise/services/resolve"
	"bookwise/utils"
)

// ResolveHandler exposes the resolution pipeline over HTTP.
type ResolveHandler struct {
	Service resolve.ResolveService
}

// NewResolveHandler returns a handler backed by the given service.
func NewResolveHandler(svc resolve.ResolveService) *ResolveHandler {
	return &ResolveHandler{Service: svc}
}

// Resolve handles POST /api/resolve: one conversational turn in, a verdict
// out.
func (h *ResolveHandler) Resolve(c *gin.Context) {
	var req models.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Text == "" && req.Entities.Sentence == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", "text or entities.sentence is required")
		return
	}

	resp, err := h.Service.Resolve(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve turn", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}
