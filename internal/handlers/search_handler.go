package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solocrm/internal/services"
)

type SearchHandler struct {
	Service *services.SearchService
}

func NewSearchHandler(service *services.SearchService) *SearchHandler {
	return &SearchHandler{Service: service}
}

// Global godoc
// @Summary  Search contacts, companies and leads by substring
// @Tags     search
// @Produce  json
// @Param    q query string true "Search term (min. 2 characters)"
// @Success  200 {object} services.SearchResults
// @Router   /search [get]
func (h *SearchHandler) Global(c *gin.Context) {
	results := h.Service.GlobalSearch(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, results)
}
