package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	HELP_ACTIVE   = "ACTIVE"
	HELP_RESOLVED = "RESOLVED"

	HELP_TYPE_NEED  = "NEED"
	HELP_TYPE_OFFER = "OFFER"

	RESPONSE_PENDING  = "PENDING"
	RESPONSE_ACCEPTED = "ACCEPTED"
)

// HelpRequestTTL is the matching window of a help request. A request older
// than this is invisible to queries even though its stored status is still
// ACTIVE; expiry is a read-time predicate, nothing sweeps the table.
const HelpRequestTTL = 30 * time.Minute

type HelpRequest struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Requester     string    `json:"requester"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	VoiceRef      string    `json:"voice_ref"`
	Type          string    `json:"type"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Status        string    `json:"status" sql:"default:'ACTIVE'"`
	ResponseCount int       `json:"response_count"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// IsOpen reports whether a request still accepts responses at the given
// moment. Every read path goes through this predicate so that create, list
// and respond can not disagree about what "expired" means.
func (h HelpRequest) IsOpen(now time.Time) bool {
	return h.Status == HELP_ACTIVE && h.ExpiresAt.After(now)
}

// Location returns the coordinates the request was filed from.
func (h HelpRequest) Location() Location {
	return Location{
		Latitude:  h.Latitude,
		Longitude: h.Longitude,
	}
}

type HelpResponse struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	HelpID    uuid.UUID `json:"help_id" gorm:"type:uuid"`
	Responder string    `json:"responder"`
	Status    string    `json:"status" sql:"default:'PENDING'"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NearbyHelpRequest is a help request annotated with its distance from the
// querying account.
type NearbyHelpRequest struct {
	HelpRequest
	DistanceKM float64 `json:"distance_km"`
}
