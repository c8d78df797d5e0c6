package store

import (
	"time"

	"github.com/foundernet/ecosystem-api/geo"
	"github.com/foundernet/ecosystem-api/schema"
)

// CreateAccount is to register an account into the ecosystem
func (s *EcosystemStore) CreateAccount(accountNumber, authSecret, phoneNumber string, metadata map[string]interface{}) (*schema.Account, error) {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	a := schema.Account{
		AccountNumber: accountNumber,
		AuthSecret:    authSecret,
		PhoneNumber:   phoneNumber,
		Profile: schema.AccountProfile{
			AccountNumber: accountNumber,
			State: schema.ActivityState{
				LastActiveTime: time.Now(),
			},
			Metadata: schema.AccountMetadata(metadata),
		},
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		return nil, err
	}

	return &a, nil
}

// GetAccount returns an account instance of a given account number
func (s *EcosystemStore) GetAccount(accountNumber string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAccountMetadata is to update metadata for a specific account
func (s *EcosystemStore) UpdateAccountMetadata(accountNumber string, metadata map[string]interface{}) error {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return err
	}

	// rows written before metadata was defaulted scan back as a nil map
	if a.Profile.Metadata == nil {
		a.Profile.Metadata = schema.AccountMetadata{}
	}

	for k, v := range metadata {
		a.Profile.Metadata[k] = v
	}

	return s.ormDB.Save(&a.Profile).Error
}

// UpdateAccountGeoPosition records the latest reported position on the
// relational profile and mirrors it into the mongo profile collection that
// backs nearby broadcast targeting.
func (s *EcosystemStore) UpdateAccountGeoPosition(accountNumber string, latitude, longitude float64) error {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return err
	}

	location := schema.Location{
		Latitude:  latitude,
		Longitude: longitude,
	}

	// reverse geocode for display purposes. The raw coordinates are what
	// matter; a resolver failure should not reject the update.
	if resolved, err := geo.PoliticalGeoInfo(location); err == nil {
		location = resolved
	}

	a.Profile.State.LastLocation = &location
	a.Profile.State.LastActiveTime = time.Now()

	if err := s.ormDB.Save(&a.Profile).Error; err != nil {
		return err
	}

	if err := s.mongo.UpdateProfileLocation(accountNumber, latitude, longitude); err != nil {
		return err
	}

	return s.mongo.AddGeographic(accountNumber, latitude, longitude)
}

// DeleteAccount removes an account from our system permanently
func (s *EcosystemStore) DeleteAccount(accountNumber string) error {
	if err := s.ormDB.Delete(schema.Account{}, "account_number = ?", accountNumber).Error; err != nil {
		return err
	}

	if err := s.ormDB.Delete(schema.AccountProfile{}, "account_number = ?", accountNumber).Error; err != nil {
		return err
	}

	return s.mongo.DeleteProfile(accountNumber)
}
