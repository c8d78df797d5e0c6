package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	URGENCY_LOW    = "LOW"
	URGENCY_MEDIUM = "MEDIUM"
	URGENCY_HIGH   = "HIGH"
)

// NeedHelp is the long-lived, non-expiring need shown on the ecosystem map.
// A founder has at most one active need; creating a new one deactivates the
// previous record instead of deleting it.
type NeedHelp struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Founder     string    `json:"founder"`
	Category    string    `json:"category"`
	Urgency     string    `json:"urgency" sql:"default:'MEDIUM'"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active" sql:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
