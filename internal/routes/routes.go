package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solocrm/internal/handlers"
)

func SetupRoutes(
	r *gin.Engine,
	contactHandler *handlers.ContactHandler,
	companyHandler *handlers.CompanyHandler,
	leadHandler *handlers.LeadHandler,
	taskHandler *handlers.TaskHandler,
	noteHandler *handlers.LeadNoteHandler,
	invoiceHandler *handlers.InvoiceHandler,
	activityHandler *handlers.ActivityHandler,
	statsHandler *handlers.StatsHandler,
	searchHandler *handlers.SearchHandler,
) *gin.Engine {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// CONTACTS
	contacts := r.Group("/contacts")
	{
		contacts.POST("", contactHandler.Create)
		contacts.GET("", contactHandler.List)
		contacts.GET("/:id", contactHandler.GetByID)
		contacts.PATCH("/:id", contactHandler.Update)
		contacts.DELETE("/:id", contactHandler.Delete)
	}

	// COMPANIES
	companies := r.Group("/companies")
	{
		companies.POST("", companyHandler.Create)
		companies.GET("", companyHandler.List)
		companies.GET("/:id", companyHandler.GetByID)
		companies.PATCH("/:id", companyHandler.Update)
		companies.DELETE("/:id", companyHandler.Delete)
	}

	// LEADS — the fixed path must be registered before the :id routes.
	leads := r.Group("/leads")
	{
		leads.GET("/export/csv", leadHandler.ExportCSV)
		leads.POST("", leadHandler.Create)
		leads.GET("", leadHandler.List)
		leads.GET("/:id", leadHandler.GetByID)
		leads.PATCH("/:id", leadHandler.Update)
		leads.DELETE("/:id", leadHandler.Delete)
	}

	// TASKS
	tasks := r.Group("/tasks")
	{
		tasks.POST("", taskHandler.Create)
		tasks.GET("", taskHandler.List)
		tasks.PATCH("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
	}

	// LEAD NOTES (append-only apart from delete)
	notes := r.Group("/lead-notes")
	{
		notes.POST("", noteHandler.Create)
		notes.GET("/lead/:id", noteHandler.ListByLead)
		notes.DELETE("/:id", noteHandler.Delete)
	}

	// INVOICES — created by the conversion chain only, no POST here.
	invoices := r.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.PATCH("/:id/status", invoiceHandler.UpdateStatus)
		invoices.GET("/:id/pdf", invoiceHandler.DownloadPDF)
	}

	// ACTIVITIES — append-only audit feed.
	activities := r.Group("/activities")
	{
		activities.POST("", activityHandler.Create)
		activities.GET("", activityHandler.List)
	}

	r.GET("/stats", statsHandler.GetSummary)
	r.GET("/search", searchHandler.Global)

	return r
}
