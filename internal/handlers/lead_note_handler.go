package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"solocrm/internal/models"
	"solocrm/internal/services"
)

type LeadNoteHandler struct {
	Service *services.LeadNoteService
}

func NewLeadNoteHandler(service *services.LeadNoteService) *LeadNoteHandler {
	return &LeadNoteHandler{Service: service}
}

func (h *LeadNoteHandler) Create(c *gin.Context) {
	var note models.LeadNote
	if err := c.ShouldBindJSON(&note); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if note.LeadID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lead_id is required"})
		return
	}
	if err := h.Service.Create(c.Request.Context(), &note); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, note)
}

// ListByLead serves GET /lead-notes/lead/:id.
func (h *LeadNoteHandler) ListByLead(c *gin.Context) {
	leadID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	notes, err := h.Service.ListByLead(c.Request.Context(), leadID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if notes == nil {
		notes = []models.LeadNote{}
	}
	c.JSON(http.StatusOK, notes)
}

func (h *LeadNoteHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	deleted, err := h.Service.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note supprimée"})
}
