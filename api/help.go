package api

import (
	"net/http"
	"strconv"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/foundernet/ecosystem-api/consts"
	"github.com/foundernet/ecosystem-api/schema"
	"github.com/foundernet/ecosystem-api/store"
	"github.com/foundernet/ecosystem-api/utils"
)

// askForHelp is the API for asking help from others. An account can hold
// only one open request at a time; the previous one is returned with the
// conflict so the client can show it.
func (s *Server) askForHelp(c *gin.Context) {
	requester := c.GetString("requester")

	// coordinates are pointers so a body that omits them is told apart
	// from one reporting (0, 0)
	var params struct {
		Category    string   `json:"category"`
		Description string   `json:"description"`
		VoiceRef    string   `json:"voice_ref"`
		Type        string   `json:"type"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Category == "" ||
		(params.Type != schema.HELP_TYPE_NEED && params.Type != schema.HELP_TYPE_OFFER) ||
		(params.Description == "" && params.VoiceRef == "") ||
		params.Latitude == nil || params.Longitude == nil ||
		*params.Latitude < -90 || *params.Latitude > 90 ||
		*params.Longitude < -180 || *params.Longitude > 180 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	req, err := s.store.CreateHelpRequest(requester, store.HelpRequestParams{
		Category:    params.Category,
		Description: params.Description,
		VoiceRef:    params.VoiceRef,
		Type:        params.Type,
		Latitude:    *params.Latitude,
		Longitude:   *params.Longitude,
	})
	if err != nil {
		if err == store.ErrMultipleRequestMade {
			existing, lookupErr := s.store.GetActiveHelpRequest(requester)
			if lookupErr != nil {
				abortWithEncoding(c, http.StatusConflict, errorMultipleRequestMade, lookupErr)
				return
			}
			// the blocking request can vanish between the two store
			// calls; still a conflict, just without the record
			if existing == nil {
				abortWithEncoding(c, http.StatusConflict, errorMultipleRequestMade)
				return
			}
			c.JSON(http.StatusConflict, gin.H{
				"error":  errorMultipleRequestMade,
				"result": existing,
			})
			c.Abort()
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.broadcastNewHelp(c, req)

	c.JSON(http.StatusCreated, gin.H{"result": req})
}

// broadcastNewHelp enqueues a push notification job targeting the accounts
// currently near the request. Failures only get logged; the request itself
// has already been committed.
func (s *Server) broadcastNewHelp(c *gin.Context, req *schema.HelpRequest) {
	accountNumbers, err := s.mongoStore.NearestDistance(consts.BROADCAST_DISTANCE_RANGE, req.Location())
	if err != nil {
		c.Error(err)
		return
	}

	receivers := make([]string, 0, len(accountNumbers))
	for _, a := range accountNumbers {
		if a != req.Requester {
			receivers = append(receivers, a)
		}
	}
	if len(receivers) == 0 {
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "broadcast_help",
		Args: []tasks.Arg{
			{Type: "string", Value: req.ID.String()},
			{Type: "string", Value: req.Category},
			{Type: "[]string", Value: receivers},
		},
	}); err != nil {
		c.Error(err)
	}
}

// listNearbyHelps is the API for querying open requests around a location
func (s *Server) listNearbyHelps(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	radius := consts.DEFAULT_NEARBY_RADIUS_KM
	if v := c.Query("radius"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed <= 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		radius = parsed
	}
	if radius > consts.MAX_NEARBY_RADIUS_KM {
		radius = consts.MAX_NEARBY_RADIUS_KM
	}

	helps, err := s.store.ListNearbyHelpRequests(schema.Location{
		Latitude:  lat,
		Longitude: lng,
	}, radius)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": helps})
}

// helpDetail is the API for fetching a single request
func (s *Server) helpDetail(c *gin.Context) {
	helpID := c.Param("helpID")

	help, err := s.store.GetHelp(helpID)
	if gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": help})
}

// resolveHelp is the API for closing the caller's open request
func (s *Server) resolveHelp(c *gin.Context) {
	requester := c.GetString("requester")

	help, err := s.store.ResolveActiveHelpRequest(requester)
	if err != nil {
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	help.Status = schema.HELP_RESOLVED
	c.JSON(http.StatusOK, gin.H{"result": help})
}

// respondToHelp is the API for responding to somebody's open request
func (s *Server) respondToHelp(c *gin.Context) {
	helpID := c.Param("helpID")
	responder := c.GetString("requester")

	var params struct {
		Message string `json:"message"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	response, err := s.store.CreateHelpResponse(helpID, responder, params.Message)
	if err != nil {
		switch err {
		case store.ErrRequestNotExist:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		case store.ErrRequestClosed:
			abortWithEncoding(c, http.StatusBadRequest, errorRequestClosed)
		case store.ErrSelfResponse:
			abortWithEncoding(c, http.StatusBadRequest, errorSelfResponse)
		case store.ErrDuplicateResponse:
			abortWithEncoding(c, http.StatusConflict, errorDuplicateResponse)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": response})
}

// acceptHelpResponse is the API for the requester to accept a response.
// Accepting resolves the request and hands back a contact link for the
// helper when a phone number is on file.
func (s *Server) acceptHelpResponse(c *gin.Context) {
	responseID := c.Param("responseID")
	owner := c.GetString("requester")

	response, help, err := s.store.AcceptHelpResponse(responseID, owner)
	if err != nil {
		switch err {
		case store.ErrResponseNotExist:
			abortWithEncoding(c, http.StatusNotFound, errorResponseNotExist)
		case store.ErrNotRequestOwner:
			abortWithEncoding(c, http.StatusForbidden, errorNotRequestOwner)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "notify_help_accepted",
		Args: []tasks.Arg{
			{Type: "string", Value: help.ID.String()},
			{Type: "string", Value: response.Responder},
		},
	}); err != nil {
		c.Error(err)
	}

	result := gin.H{
		"response": response,
		"request":  help,
	}

	if helper, err := s.store.GetAccount(response.Responder); err == nil && helper.PhoneNumber != "" {
		result["helper_phone"] = helper.PhoneNumber
		result["whatsapp_link"] = utils.WhatsAppLink(helper.PhoneNumber)
	}

	c.JSON(http.StatusOK, result)
}

// metricActiveRequests reports how many requests are currently open
func (s *Server) metricActiveRequests(c *gin.Context) {
	count, err := s.store.CountActiveHelpRequests()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"active_requests": count})
}
