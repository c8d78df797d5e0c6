package store

import (
	"github.com/jinzhu/gorm"

	"github.com/foundernet/ecosystem-api/schema"
)

// ecosystem main datastore
type EcosystemCore interface {
	Ping() error

	// Account
	CreateAccount(string, string, string, map[string]interface{}) (*schema.Account, error)
	GetAccount(string) (*schema.Account, error)
	UpdateAccountMetadata(string, map[string]interface{}) error
	UpdateAccountGeoPosition(accountNumber string, latitude, longitude float64) error
	DeleteAccount(string) error

	// Help requests
	CreateHelpRequest(accountNumber string, params HelpRequestParams) (*schema.HelpRequest, error)
	GetHelp(helpID string) (*schema.HelpRequest, error)
	GetActiveHelpRequest(accountNumber string) (*schema.HelpRequest, error)
	ListNearbyHelpRequests(origin schema.Location, radiusKM float64) ([]schema.NearbyHelpRequest, error)
	ResolveActiveHelpRequest(accountNumber string) (*schema.HelpRequest, error)
	CountActiveHelpRequests() (int, error)

	// Help responses
	CreateHelpResponse(helpID, responder, message string) (*schema.HelpResponse, error)
	AcceptHelpResponse(responseID, owner string) (*schema.HelpResponse, *schema.HelpRequest, error)

	// Needs
	CreateNeed(founder, category, urgency, description string) (*schema.NeedHelp, error)
	ListActiveNeeds(founder string) ([]schema.NeedHelp, error)
	DeactivateNeed(founder string) error

	// Connections
	CreateConnectionRequest(from, to, source, purpose string) (*schema.ConnectionRequest, error)
	AcceptConnectionRequest(connectionID, to string) (*schema.ConnectionRequest, error)
	ListConnectionRequests(accountNumber, direction string) ([]schema.ConnectionRequest, error)
}

// EcosystemStore is an implementation of EcosystemCore
type EcosystemStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewEcosystemStore(ormDB *gorm.DB, mongo MongoStore) *EcosystemStore {
	return &EcosystemStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *EcosystemStore) Ping() error {
	return s.ormDB.DB().Ping()
}
