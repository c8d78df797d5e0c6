package store

import (
	"fmt"
	"time"

	"github.com/foundernet/ecosystem-api/schema"
)

var (
	ErrConnectionExists   = fmt.Errorf("a connection request for this pair already exists")
	ErrConnectionNotExist = fmt.Errorf("the connection request is not open for you")
	ErrSelfConnection     = fmt.Errorf("connecting to yourself is not allowed")
)

// CreateConnectionRequest adds a directed edge between two accounts. The
// (from_account, to_account) unique index rejects a second request for the
// same pair; the violation is translated like the pre-check.
func (s *EcosystemStore) CreateConnectionRequest(from, to, source, purpose string) (*schema.ConnectionRequest, error) {
	if from == to {
		return nil, ErrSelfConnection
	}

	now := time.Now().UTC()
	connection := schema.ConnectionRequest{
		From:      from,
		To:        to,
		Status:    schema.CONNECTION_PENDING,
		Source:    source,
		Purpose:   purpose,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var count int
	if err := s.ormDB.Model(schema.ConnectionRequest{}).
		Where("from_account = ? AND to_account = ?", from, to).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrConnectionExists
	}

	if err := s.ormDB.Create(&connection).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConnectionExists
		}
		return nil, err
	}

	return &connection, nil
}

// AcceptConnectionRequest marks a pending edge accepted. Only the addressee
// can accept; anything else reads as not-exist so the edge is not leaked.
func (s *EcosystemStore) AcceptConnectionRequest(connectionID, to string) (*schema.ConnectionRequest, error) {
	result := s.ormDB.Model(schema.ConnectionRequest{}).
		Where("id = ? AND to_account = ? AND status = ?", connectionID, to, schema.CONNECTION_PENDING).
		Updates(map[string]interface{}{
			"status":     schema.CONNECTION_ACCEPTED,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrConnectionNotExist
	}

	var connection schema.ConnectionRequest
	if err := s.ormDB.Where("id = ?", connectionID).First(&connection).Error; err != nil {
		return nil, err
	}

	return &connection, nil
}

// ListConnectionRequests lists edges touching an account. Direction is
// either "incoming" or "outgoing"; empty means both.
func (s *EcosystemStore) ListConnectionRequests(accountNumber, direction string) ([]schema.ConnectionRequest, error) {
	connections := []schema.ConnectionRequest{}

	query := s.ormDB
	switch direction {
	case "incoming":
		query = query.Where("to_account = ?", accountNumber)
	case "outgoing":
		query = query.Where("from_account = ?", accountNumber)
	default:
		query = query.Where("from_account = ? OR to_account = ?", accountNumber, accountNumber)
	}

	if err := query.Order("created_at DESC").Find(&connections).Error; err != nil {
		return nil, err
	}

	return connections, nil
}
