package store

import (
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/stretchr/testify/suite"

	"github.com/foundernet/ecosystem-api/schema"
)

type HelpTestSuite struct {
	suite.Suite
	connURI string
	ormDB   *gorm.DB
	store   *EcosystemStore
}

func NewHelpTestSuite(connURI string) *HelpTestSuite {
	return &HelpTestSuite{
		connURI: connURI,
	}
}

func (s *HelpTestSuite) SetupSuite() {
	if s.connURI == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	ormDB, err := gorm.Open("postgres", s.connURI)
	if err != nil {
		s.T().Fatalf("open postgres with error: %s", err)
	}
	s.ormDB = ormDB

	if err := s.ormDB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		s.T().Fatal(err)
	}

	if err := s.ormDB.AutoMigrate(
		&schema.HelpRequest{},
		&schema.HelpResponse{},
	).Error; err != nil {
		s.T().Fatal(err)
	}

	if err := s.ormDB.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS help_response_unique_responder ON help_responses (help_id, responder)`,
	).Error; err != nil {
		s.T().Fatal(err)
	}

	s.store = NewEcosystemStore(s.ormDB, nil)
}

// make sure every test starts from empty tables
func (s *HelpTestSuite) SetupTest() {
	s.NoError(s.ormDB.Delete(schema.HelpResponse{}).Error)
	s.NoError(s.ormDB.Delete(schema.HelpRequest{}).Error)
}

func (s *HelpTestSuite) mustCreateRequest(requester string) *schema.HelpRequest {
	help, err := s.store.CreateHelpRequest(requester, HelpRequestParams{
		Category:    "food",
		Description: "need groceries",
		Type:        schema.HELP_TYPE_NEED,
		Latitude:    12.9352,
		Longitude:   77.6245,
	})
	s.Require().NoError(err)
	s.Require().NotNil(help)
	return help
}

// A second create while a request is open is rejected and leaves storage
// exactly as it was.
func (s *HelpTestSuite) TestCreateSecondRequestLeavesStorageUnchanged() {
	first := s.mustCreateRequest("requester-1")

	help, err := s.store.CreateHelpRequest("requester-1", HelpRequestParams{
		Category:  "retail",
		Type:      schema.HELP_TYPE_NEED,
		Latitude:  1,
		Longitude: 1,
	})
	s.Equal(ErrMultipleRequestMade, err)
	s.Nil(help)

	var count int
	s.NoError(s.ormDB.Model(schema.HelpRequest{}).Where("requester = ?", "requester-1").Count(&count).Error)
	s.Equal(1, count)

	var stored schema.HelpRequest
	s.NoError(s.ormDB.Where("id = ?", first.ID).First(&stored).Error)
	s.Equal("food", stored.Category)
	s.Equal(schema.HELP_ACTIVE, stored.Status)
}

// Responding twice leaves a single response row and a counter of one.
func (s *HelpTestSuite) TestRespondTwiceYieldsOneResponse() {
	help := s.mustCreateRequest("requester-1")

	response, err := s.store.CreateHelpResponse(help.ID.String(), "responder-1", "on my way")
	s.Require().NoError(err)
	s.Equal(schema.RESPONSE_PENDING, response.Status)

	_, err = s.store.CreateHelpResponse(help.ID.String(), "responder-1", "again")
	s.Equal(ErrDuplicateResponse, err)

	var count int
	s.NoError(s.ormDB.Model(schema.HelpResponse{}).Where("help_id = ?", help.ID).Count(&count).Error)
	s.Equal(1, count)

	var stored schema.HelpRequest
	s.NoError(s.ormDB.Where("id = ?", help.ID).First(&stored).Error)
	s.Equal(1, stored.ResponseCount)
}

// A duplicate insert racing past the pre-check is stopped by the unique
// index and recognized as such.
func (s *HelpTestSuite) TestDuplicateResponseUniqueViolation() {
	help := s.mustCreateRequest("requester-1")

	_, err := s.store.CreateHelpResponse(help.ID.String(), "responder-1", "on my way")
	s.Require().NoError(err)

	err = s.ormDB.Create(&schema.HelpResponse{
		HelpID:    help.ID,
		Responder: "responder-1",
		Status:    schema.RESPONSE_PENDING,
		CreatedAt: time.Now().UTC(),
	}).Error
	s.Require().Error(err)
	s.True(isUniqueViolation(err))
}

// Accepting a response flips both the response and its parent request, and
// never one without the other.
func (s *HelpTestSuite) TestAcceptResolvesRequestAtomically() {
	help := s.mustCreateRequest("requester-1")

	response, err := s.store.CreateHelpResponse(help.ID.String(), "responder-1", "on my way")
	s.Require().NoError(err)

	acceptedResponse, resolvedHelp, err := s.store.AcceptHelpResponse(response.ID.String(), "requester-1")
	s.Require().NoError(err)
	s.Equal(schema.RESPONSE_ACCEPTED, acceptedResponse.Status)
	s.Equal(schema.HELP_RESOLVED, resolvedHelp.Status)

	var storedResponse schema.HelpResponse
	s.NoError(s.ormDB.Where("id = ?", response.ID).First(&storedResponse).Error)
	s.Equal(schema.RESPONSE_ACCEPTED, storedResponse.Status)

	var storedHelp schema.HelpRequest
	s.NoError(s.ormDB.Where("id = ?", help.ID).First(&storedHelp).Error)
	s.Equal(schema.HELP_RESOLVED, storedHelp.Status)
}

// An accept by anyone but the requester changes nothing.
func (s *HelpTestSuite) TestAcceptByNonOwnerLeavesStorageUnchanged() {
	help := s.mustCreateRequest("requester-1")

	response, err := s.store.CreateHelpResponse(help.ID.String(), "responder-1", "on my way")
	s.Require().NoError(err)

	_, _, err = s.store.AcceptHelpResponse(response.ID.String(), "intruder-1")
	s.Equal(ErrNotRequestOwner, err)

	var storedResponse schema.HelpResponse
	s.NoError(s.ormDB.Where("id = ?", response.ID).First(&storedResponse).Error)
	s.Equal(schema.RESPONSE_PENDING, storedResponse.Status)

	var storedHelp schema.HelpRequest
	s.NoError(s.ormDB.Where("id = ?", help.ID).First(&storedHelp).Error)
	s.Equal(schema.HELP_ACTIVE, storedHelp.Status)
}

func TestHelpTestSuite(t *testing.T) {
	suite.Run(t, NewHelpTestSuite("postgres://postgres@127.0.0.1:5432/ecosystem_test?sslmode=disable"))
}
