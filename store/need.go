package store

import (
	"fmt"
	"time"

	"github.com/foundernet/ecosystem-api/schema"
)

var (
	ErrNeedNotExist = fmt.Errorf("no active need found")
)

// CreateNeed publishes a founder's need on the ecosystem map. A founder has
// at most one active need: the previous one is deactivated in the same
// transaction that creates the new record.
func (s *EcosystemStore) CreateNeed(founder, category, urgency, description string) (*schema.NeedHelp, error) {
	now := time.Now().UTC()
	need := schema.NeedHelp{
		Founder:     founder,
		Category:    category,
		Urgency:     urgency,
		Description: description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if err := tx.Model(schema.NeedHelp{}).
		Where("founder = ? AND is_active = ?", founder, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": now,
		}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Create(&need).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &need, nil
}

// ListActiveNeeds returns active needs for map display. When founder is not
// empty the result is scoped to that founder.
func (s *EcosystemStore) ListActiveNeeds(founder string) ([]schema.NeedHelp, error) {
	needs := []schema.NeedHelp{}

	query := s.ormDB.Where("is_active = ?", true)
	if founder != "" {
		query = query.Where("founder = ?", founder)
	}

	if err := query.Order("created_at DESC").Find(&needs).Error; err != nil {
		return nil, err
	}

	return needs, nil
}

// DeactivateNeed takes the founder's active need off the map.
func (s *EcosystemStore) DeactivateNeed(founder string) error {
	result := s.ormDB.Model(schema.NeedHelp{}).
		Where("founder = ? AND is_active = ?", founder, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNeedNotExist
	}

	return nil
}
