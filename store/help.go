package store

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/foundernet/ecosystem-api/geo"
	"github.com/foundernet/ecosystem-api/schema"
)

var (
	ErrRequestNotExist     = fmt.Errorf("the request is either closed or does not exist")
	ErrMultipleRequestMade = fmt.Errorf("making multiple requests is not allowed")
	ErrRequestClosed       = fmt.Errorf("the request is no longer open for responses")
	ErrSelfResponse        = fmt.Errorf("responding to your own request is not allowed")
	ErrDuplicateResponse   = fmt.Errorf("you have already responded to this request")
	ErrResponseNotExist    = fmt.Errorf("the response does not exist")
	ErrNotRequestOwner     = fmt.Errorf("only the requester can accept a response")
)

// HelpRequestParams carries the validated fields of a new help request.
type HelpRequestParams struct {
	Category    string
	Description string
	VoiceRef    string
	Type        string
	Latitude    float64
	Longitude   float64
}

// uniqueViolation is the postgres error code for a duplicate key. Racing
// inserts bypass our pre-checks, so constraint violations are translated to
// the same sentinel errors the pre-checks produce.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == uniqueViolation
}

// CreateHelpRequest creates a help entry with a fixed matching window. It
// fails with ErrMultipleRequestMade while the account still owns an ACTIVE
// request whose window has not passed. An ACTIVE request past its window
// does not block a new one; it simply stops being returned by queries.
func (s *EcosystemStore) CreateHelpRequest(accountNumber string, params HelpRequestParams) (*schema.HelpRequest, error) {
	if existing, err := s.GetActiveHelpRequest(accountNumber); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrMultipleRequestMade
	}

	now := time.Now().UTC()
	help := schema.HelpRequest{
		Requester:   accountNumber,
		Category:    params.Category,
		Description: params.Description,
		VoiceRef:    params.VoiceRef,
		Type:        params.Type,
		Latitude:    params.Latitude,
		Longitude:   params.Longitude,
		Status:      schema.HELP_ACTIVE,
		CreatedAt:   now,
		ExpiresAt:   now.Add(schema.HelpRequestTTL),
	}

	if err := s.ormDB.Create(&help).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrMultipleRequestMade
		}
		return nil, err
	}
	return &help, nil
}

// GetActiveHelpRequest returns the account's ACTIVE unexpired request, or
// nil when there is none.
func (s *EcosystemStore) GetActiveHelpRequest(accountNumber string) (*schema.HelpRequest, error) {
	var help schema.HelpRequest

	result := s.ormDB.
		Where("requester = ? AND status = ? AND expires_at > ?", accountNumber, schema.HELP_ACTIVE, time.Now().UTC()).
		First(&help)
	if result.RecordNotFound() {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return &help, nil
}

// ListNearbyHelpRequests loads all ACTIVE unexpired requests and filters
// them by great-circle distance in application code. There is no geospatial
// index behind this; the active set is expected to stay small.
func (s *EcosystemStore) ListNearbyHelpRequests(origin schema.Location, radiusKM float64) ([]schema.NearbyHelpRequest, error) {
	helps := []schema.HelpRequest{}

	if err := s.ormDB.
		Where("status = ? AND expires_at > ?", schema.HELP_ACTIVE, time.Now().UTC()).
		Order("created_at DESC").
		Find(&helps).Error; err != nil {
		return nil, err
	}

	return geo.Nearby(origin, radiusKM, helps), nil
}

// CountActiveHelpRequests reports how many requests are open right now.
func (s *EcosystemStore) CountActiveHelpRequests() (int, error) {
	var count int
	if err := s.ormDB.Model(schema.HelpRequest{}).
		Where("status = ? AND expires_at > ?", schema.HELP_ACTIVE, time.Now().UTC()).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *EcosystemStore) GetHelp(helpID string) (*schema.HelpRequest, error) {
	var help schema.HelpRequest

	if err := s.ormDB.Where("id = ?", helpID).First(&help).Error; err != nil {
		return nil, err
	}

	return &help, nil
}

// ResolveActiveHelpRequest sets the account's ACTIVE request to RESOLVED.
// The expiry window is deliberately not part of the predicate here: an
// expired request the owner never resolved can still be closed explicitly.
func (s *EcosystemStore) ResolveActiveHelpRequest(accountNumber string) (*schema.HelpRequest, error) {
	var help schema.HelpRequest

	result := s.ormDB.
		Where("requester = ? AND status = ?", accountNumber, schema.HELP_ACTIVE).
		First(&help)
	if result.RecordNotFound() {
		return nil, ErrRequestNotExist
	}
	if result.Error != nil {
		return nil, result.Error
	}

	if err := s.ormDB.Model(&help).Update("status", schema.HELP_RESOLVED).Error; err != nil {
		return nil, err
	}

	return &help, nil
}

// CreateHelpResponse records a response to an open request and bumps the
// request's response counter in the same transaction. The (help_id,
// responder) unique index is the backstop for racing duplicates.
func (s *EcosystemStore) CreateHelpResponse(helpID, responder, message string) (*schema.HelpResponse, error) {
	var help schema.HelpRequest

	result := s.ormDB.Where("id = ?", helpID).First(&help)
	if result.RecordNotFound() {
		return nil, ErrRequestNotExist
	}
	if result.Error != nil {
		return nil, result.Error
	}

	if !help.IsOpen(time.Now().UTC()) {
		return nil, ErrRequestClosed
	}

	if help.Requester == responder {
		return nil, ErrSelfResponse
	}

	var count int
	if err := s.ormDB.Model(schema.HelpResponse{}).
		Where("help_id = ? AND responder = ?", help.ID, responder).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateResponse
	}

	response := schema.HelpResponse{
		HelpID:    help.ID,
		Responder: responder,
		Status:    schema.RESPONSE_PENDING,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if err := tx.Create(&response).Error; err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return nil, ErrDuplicateResponse
		}
		return nil, err
	}

	if err := tx.Model(schema.HelpRequest{}).
		Where("id = ?", help.ID).
		Update("response_count", gorm.Expr("response_count + 1")).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &response, nil
}

// AcceptHelpResponse marks a response ACCEPTED and resolves its parent
// request in one transaction so neither state is ever observed without the
// other.
func (s *EcosystemStore) AcceptHelpResponse(responseID, owner string) (*schema.HelpResponse, *schema.HelpRequest, error) {
	var response schema.HelpResponse

	result := s.ormDB.Where("id = ?", responseID).First(&response)
	if result.RecordNotFound() {
		return nil, nil, ErrResponseNotExist
	}
	if result.Error != nil {
		return nil, nil, result.Error
	}

	var help schema.HelpRequest
	if err := s.ormDB.Where("id = ?", response.HelpID).First(&help).Error; err != nil {
		return nil, nil, err
	}

	if help.Requester != owner {
		return nil, nil, ErrNotRequestOwner
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, nil, tx.Error
	}

	if err := tx.Model(&response).Update("status", schema.RESPONSE_ACCEPTED).Error; err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	if err := tx.Model(&help).Update("status", schema.HELP_RESOLVED).Error; err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, nil, err
	}

	response.Status = schema.RESPONSE_ACCEPTED
	help.Status = schema.HELP_RESOLVED

	return &response, &help, nil
}
