package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/foundernet/ecosystem-api/store"
)

// requestConnection is the API for asking another account to connect
func (s *Server) requestConnection(c *gin.Context) {
	from := c.GetString("requester")

	var params struct {
		To      string `json:"to"`
		Source  string `json:"source"`
		Purpose string `json:"purpose"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.To == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	connection, err := s.store.CreateConnectionRequest(from, params.To, params.Source, params.Purpose)
	if err != nil {
		switch err {
		case store.ErrConnectionExists:
			abortWithEncoding(c, http.StatusConflict, errorConnectionExists)
		case store.ErrSelfConnection:
			abortWithEncoding(c, http.StatusBadRequest, errorSelfConnection)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "notify_new_connection",
		Args: []tasks.Arg{
			{Type: "string", Value: connection.ID.String()},
			{Type: "string", Value: connection.From},
			{Type: "string", Value: connection.To},
		},
	}); err != nil {
		c.Error(err)
	}

	c.JSON(http.StatusCreated, gin.H{"result": connection})
}

// acceptConnection is the API for the addressee to accept a pending edge
func (s *Server) acceptConnection(c *gin.Context) {
	connectionID := c.Param("connectionID")
	to := c.GetString("requester")

	connection, err := s.store.AcceptConnectionRequest(connectionID, to)
	if err != nil {
		if err == store.ErrConnectionNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorConnectionNotExist)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": connection})
}

// listConnections lists the caller's edges, optionally one direction only
func (s *Server) listConnections(c *gin.Context) {
	accountNumber := c.GetString("requester")
	direction := c.Query("direction")

	connections, err := s.store.ListConnectionRequests(accountNumber, direction)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": connections})
}
