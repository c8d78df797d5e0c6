package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// parseGeoPosition splits a Geo-Position header value ("lat;long") into
// coordinates.
func parseGeoPosition(geoPosition string) (float64, float64, error) {
	parts := strings.Split(geoPosition, ";")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid geo-position value")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}

	long, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}

	if lat < -90 || lat > 90 || long < -180 || long > 180 {
		return 0, 0, fmt.Errorf("geo-position out of range")
	}

	return lat, long, nil
}

// updateGeoPositionMiddleware keeps the caller's position fresh. Clients
// attach a Geo-Position header on every call; the position feeds the mongo
// profile that decides who hears about new requests nearby. A bad header
// never fails the request it rode in on.
func (s *Server) updateGeoPositionMiddleware(c *gin.Context) {
	gp := c.GetHeader("Geo-Position")
	accountNumber := c.GetString("requester")

	if gp != "" && accountNumber != "" {
		if lat, long, err := parseGeoPosition(gp); err == nil {
			if err := s.store.UpdateAccountGeoPosition(accountNumber, lat, long); err != nil {
				c.Error(err)
			}
		} else {
			c.Error(err)
		}
	}
	c.Next()
}
