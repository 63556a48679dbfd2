package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/service"
)

type SearchController struct {
	searchService service.SearchService
}

func NewSearchController(searchService service.SearchService) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

// GlobalSearch backs the command palette: up to three results per group
// across cafes, jobs and people. Short queries return empty groups.
func (ctrl *SearchController) GlobalSearch(c *gin.Context) {
	results := ctrl.searchService.GlobalSearch(c.Query("q"))
	c.JSON(http.StatusOK, results)
}
