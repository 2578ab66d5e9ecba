package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solocrm/internal/models"
	"solocrm/internal/services"
)

type LeadHandler struct {
	Service *services.LeadService
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{Service: service}
}

// Create godoc
// @Summary  Create a lead
// @Tags     leads
// @Accept   json
// @Produce  json
// @Param    lead body models.Lead true "Lead fields"
// @Success  201 {object} models.Lead
// @Router   /leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.Create(c.Request.Context(), &lead); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// List godoc
// @Summary  List leads with contact names
// @Tags     leads
// @Produce  json
// @Success  200 {array} models.Lead
// @Router   /leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.Service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	c.JSON(http.StatusOK, leads)
}

func (h *LeadHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	lead, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if lead == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	c.JSON(http.StatusOK, lead)
}

// Update godoc
// @Summary  Partially update a lead
// @Description Setting status to "converti" triggers the conversion automation as a side effect.
// @Tags     leads
// @Accept   json
// @Produce  json
// @Param    id    path int              true "Lead ID"
// @Param    patch body models.LeadPatch true "Fields to change"
// @Success  200 {object} models.Lead
// @Router   /leads/{id} [patch]
func (h *LeadHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch models.LeadPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.Service.Update(c.Request.Context(), id, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if lead == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) Delete(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lead supprimé avec succès"})
}

// ExportCSV godoc
// @Summary  Download all leads as a semicolon-delimited CSV
// @Tags     leads
// @Produce  text/csv
// @Success  200 {string} string "CSV file"
// @Router   /leads/export/csv [get]
func (h *LeadHandler) ExportCSV(c *gin.Context) {
	data, err := h.Service.ExportCSV(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="export-leads-crm.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
