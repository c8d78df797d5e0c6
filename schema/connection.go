package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	CONNECTION_PENDING  = "PENDING"
	CONNECTION_ACCEPTED = "ACCEPTED"
)

// ConnectionRequest is a directed social-graph edge between two accounts.
// The (from, to) pair is unique; asking twice is a conflict, not an update.
type ConnectionRequest struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	From      string    `json:"from" gorm:"column:from_account"`
	To        string    `json:"to" gorm:"column:to_account"`
	Status    string    `json:"status" sql:"default:'PENDING'"`
	Source    string    `json:"source"`
	Purpose   string    `json:"purpose"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
