package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foundernet/ecosystem-api/analysis"
)

// analyzeMarket is the API for the canned market viability report
func (s *Server) analyzeMarket(c *gin.Context) {
	var params struct {
		Domain      string                `json:"domain"`
		Location    string                `json:"location"`
		BudgetLevel string                `json:"budget_level"`
		Competitors []analysis.Competitor `json:"competitors"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Domain == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	result := analysis.Analyze(params.Domain, params.Location, params.BudgetLevel, params.Competitors)

	c.JSON(http.StatusOK, gin.H{"result": result})
}
