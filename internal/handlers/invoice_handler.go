package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"solocrm/internal/models"
	"solocrm/internal/pdf"
	"solocrm/internal/services"
)

type InvoiceHandler struct {
	Service  *services.InvoiceService
	Renderer *pdf.InvoiceRenderer
}

func NewInvoiceHandler(service *services.InvoiceService, renderer *pdf.InvoiceRenderer) *InvoiceHandler {
	return &InvoiceHandler{Service: service, Renderer: renderer}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.Service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	c.JSON(http.StatusOK, invoices)
}

type invoiceStatusRequest struct {
	Status models.InvoiceStatus `json:"status"`
}

// UpdateStatus flips an invoice between "en attente" and "payée".
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req invoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != models.InvoiceStatusPending && req.Status != models.InvoiceStatusPaid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice status"})
		return
	}
	invoice, err := h.Service.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if invoice == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// DownloadPDF godoc
// @Summary  Download an invoice as PDF
// @Tags     invoices
// @Produce  application/pdf
// @Param    id path int true "Invoice ID"
// @Success  200 {string} string "PDF file"
// @Router   /invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	invoice, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if invoice == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}

	data, err := h.Renderer.Render(invoice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, invoice.InvoiceNumber))
	c.Data(http.StatusOK, "application/pdf", data)
}
