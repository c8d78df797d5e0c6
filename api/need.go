package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foundernet/ecosystem-api/schema"
	"github.com/foundernet/ecosystem-api/store"
)

// createNeed publishes the caller's need on the ecosystem map, replacing
// their previous active one.
func (s *Server) createNeed(c *gin.Context) {
	founder := c.GetString("requester")

	var params struct {
		Category    string `json:"category"`
		Urgency     string `json:"urgency"`
		Description string `json:"description"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Urgency == "" {
		params.Urgency = schema.URGENCY_MEDIUM
	}

	if params.Category == "" ||
		(params.Urgency != schema.URGENCY_LOW &&
			params.Urgency != schema.URGENCY_MEDIUM &&
			params.Urgency != schema.URGENCY_HIGH) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	need, err := s.store.CreateNeed(founder, params.Category, params.Urgency, params.Description)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": need})
}

// listNeeds returns active needs for map display
func (s *Server) listNeeds(c *gin.Context) {
	founder := c.Query("founder")

	needs, err := s.store.ListActiveNeeds(founder)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": needs})
}

// deactivateNeed takes the caller's active need off the map
func (s *Server) deactivateNeed(c *gin.Context) {
	founder := c.GetString("requester")

	if err := s.store.DeactivateNeed(founder); err != nil {
		if err == store.ErrNeedNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorNeedNotExist)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
