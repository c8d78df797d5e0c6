package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/foundernet/ecosystem-api/api/mocks"
	"github.com/foundernet/ecosystem-api/schema"
	"github.com/foundernet/ecosystem-api/store"
)

// testRequester injects the account number that authMiddleware would
// normally extract from the JWT.
func testRequester(accountNumber string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("requester", accountNumber)
		c.Next()
	}
}

// fakeEnqueuer captures background task signatures instead of hitting a broker
type fakeEnqueuer struct {
	sent []*tasks.Signature
}

func (f *fakeEnqueuer) SendTask(signature *tasks.Signature) (*result.AsyncResult, error) {
	f.sent = append(f.sent, signature)
	return nil, nil
}

func TestAskForHelp(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockEcosystemCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	bg := &fakeEnqueuer{}

	s := Server{
		store:      a,
		mongoStore: m,
		background: bg,
	}

	created := &schema.HelpRequest{
		ID:        uuid.New(),
		Requester: "requester-1",
		Category:  "food",
		Type:      schema.HELP_TYPE_NEED,
		Latitude:  12.9352,
		Longitude: 77.6245,
		Status:    schema.HELP_ACTIVE,
		ExpiresAt: time.Now().Add(schema.HelpRequestTTL),
	}

	a.EXPECT().CreateHelpRequest("requester-1", gomock.Any()).Return(created, nil).Times(1)
	m.EXPECT().NearestDistance(gomock.Any(), gomock.Any()).
		Return([]string{"requester-1", "neighbor-1", "neighbor-2"}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("requester-1"))
	router.POST("/", s.askForHelp)

	body := `{"category":"food","description":"need groceries","type":"NEED","latitude":12.9352,"longitude":77.6245}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	if assert.Len(t, bg.sent, 1, "broadcast job not enqueued") {
		sig := bg.sent[0]
		assert.Equal(t, "broadcast_help", sig.Name)
		assert.Equal(t, created.ID.String(), sig.Args[0].Value)
		assert.Equal(t, "food", sig.Args[1].Value)
		// the requester is excluded from the receiver list
		assert.Equal(t, []string{"neighbor-1", "neighbor-2"}, sig.Args[2].Value)
	}
}

func TestAskForHelpReturnsExistingOnConflict(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockEcosystemCore(ctl)

	s := Server{store: a}

	existing := &schema.HelpRequest{
		ID:        uuid.New(),
		Requester: "requester-1",
		Category:  "retail",
		Status:    schema.HELP_ACTIVE,
	}

	a.EXPECT().CreateHelpRequest("requester-1", gomock.Any()).
		Return(nil, store.ErrMultipleRequestMade).Times(1)
	a.EXPECT().GetActiveHelpRequest("requester-1").Return(existing, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("requester-1"))
	router.POST("/", s.askForHelp)

	body := `{"category":"retail","description":"hiring a carpenter","type":"NEED","latitude":12.9,"longitude":77.6}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var jResp struct {
		Result schema.HelpRequest `json:"result"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, existing.ID, jResp.Result.ID, "conflict should carry the open request")
}

func TestAskForHelpRejectsInvalidParameters(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{store: mocks.NewMockEcosystemCore(ctl)}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("requester-1"))
	router.POST("/", s.askForHelp)

	cases := []string{
		`{"category":"","description":"x","type":"NEED","latitude":1,"longitude":1}`,
		`{"category":"food","description":"x","type":"WANT","latitude":1,"longitude":1}`,
		`{"category":"food","description":"","voice_ref":"","type":"NEED","latitude":1,"longitude":1}`,
		`{"category":"food","description":"x","type":"NEED","latitude":91,"longitude":1}`,
		`{"category":"food","description":"x","type":"NEED","latitude":1,"longitude":181}`,
	}

	for _, body := range cases {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "accepted invalid body: %s", body)
	}
}

func TestListNearbyHelps(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockEcosystemCore(ctl)
	s := Server{store: a}

	nearby := []schema.NearbyHelpRequest{
		{
			HelpRequest: schema.HelpRequest{ID: uuid.New(), Category: "food"},
			DistanceKM:  1.2,
		},
	}

	a.EXPECT().ListNearbyHelpRequests(schema.Location{Latitude: 12.9352, Longitude: 77.6245}, 5.0).
		Return(nearby, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.listNearbyHelps)

	req := httptest.NewRequest("GET", "/?lat=12.9352&lng=77.6245", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result []schema.NearbyHelpRequest `json:"result"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	if assert.Len(t, jResp.Result, 1) {
		assert.Equal(t, 1.2, jResp.Result[0].DistanceKM)
	}
}

func TestListNearbyHelpsCapsRadius(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockEcosystemCore(ctl)
	s := Server{store: a}

	a.EXPECT().ListNearbyHelpRequests(gomock.Any(), 50.0).
		Return([]schema.NearbyHelpRequest{}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.listNearbyHelps)

	req := httptest.NewRequest("GET", "/?lat=12.9&lng=77.6&radius=500", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestResolveHelpWithoutOpenRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockEcosystemCore(ctl)
	s := Server{store: a}

	a.EXPECT().ResolveActiveHelpRequest("requester-1").
		Return(nil, store.ErrRequestNotExist).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("requester-1"))
	router.PATCH("/", s.resolveHelp)

	req := httptest.NewRequest("PATCH", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestRespondToHelp(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockEcosystemCore(ctl)
	s := Server{store: a}

	helpUUID := uuid.New()
	helpID := helpUUID.String()
	response := &schema.HelpResponse{
		ID:        uuid.New(),
		HelpID:    helpUUID,
		Responder: "responder-1",
		Status:    schema.RESPONSE_PENDING,
		Message:   "on my way",
	}

	a.EXPECT().CreateHelpResponse(helpID, "responder-1", "on my way").
		Return(response, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("responder-1"))
	router.POST("/:helpID/responses", s.respondToHelp)

	req := httptest.NewRequest("POST", "/"+helpID+"/responses", strings.NewReader(`{"message":"on my way"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestRespondToHelpErrors(t *testing.T) {
	cases := []struct {
		storeErr error
		code     int
	}{
		{store.ErrRequestNotExist, http.StatusNotFound},
		{store.ErrRequestClosed, http.StatusBadRequest},
		{store.ErrSelfResponse, http.StatusBadRequest},
		{store.ErrDuplicateResponse, http.StatusConflict},
	}

	for _, tc := range cases {
		ctl := gomock.NewController(t)

		a := mocks.NewMockEcosystemCore(ctl)
		s := Server{store: a}

		a.EXPECT().CreateHelpResponse(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, tc.storeErr).Times(1)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.Use(testRequester("responder-1"))
		router.POST("/:helpID/responses", s.respondToHelp)

		req := httptest.NewRequest("POST", "/some-help/responses", strings.NewReader(`{"message":"hi"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, tc.code, w.Code, "wrong status code for %v", tc.storeErr)
		ctl.Finish()
	}
}

func TestAcceptHelpResponse(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockEcosystemCore(ctl)
	bg := &fakeEnqueuer{}
	s := Server{store: a, background: bg}

	response := &schema.HelpResponse{
		ID:        uuid.New(),
		Responder: "responder-1",
		Status:    schema.RESPONSE_ACCEPTED,
	}
	help := &schema.HelpRequest{
		ID:        uuid.New(),
		Requester: "requester-1",
		Status:    schema.HELP_RESOLVED,
	}

	a.EXPECT().AcceptHelpResponse(response.ID.String(), "requester-1").
		Return(response, help, nil).Times(1)
	a.EXPECT().GetAccount("responder-1").Return(&schema.Account{
		AccountNumber: "responder-1",
		PhoneNumber:   "+91 98765 43210",
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("requester-1"))
	router.PATCH("/:responseID/accept", s.acceptHelpResponse)

	req := httptest.NewRequest("PATCH", "/"+response.ID.String()+"/accept", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "https://wa.me/919876543210", jResp["whatsapp_link"])
	assert.Equal(t, "+91 98765 43210", jResp["helper_phone"])

	if assert.Len(t, bg.sent, 1, "notify job not enqueued") {
		assert.Equal(t, "notify_help_accepted", bg.sent[0].Name)
	}
}

func TestAcceptHelpResponseNotOwner(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockEcosystemCore(ctl)
	s := Server{store: a}

	a.EXPECT().AcceptHelpResponse(gomock.Any(), "intruder-1").
		Return(nil, nil, store.ErrNotRequestOwner).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("intruder-1"))
	router.PATCH("/:responseID/accept", s.acceptHelpResponse)

	req := httptest.NewRequest("PATCH", "/some-response/accept", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

func TestAskForHelpRequiresCoordinates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{store: mocks.NewMockEcosystemCore(ctl)}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("requester-1"))
	router.POST("/", s.askForHelp)

	// omitted coordinates must not pass as (0, 0)
	cases := []string{
		`{"category":"food","description":"x","type":"NEED"}`,
		`{"category":"food","description":"x","type":"NEED","latitude":12.9}`,
		`{"category":"food","description":"x","type":"NEED","longitude":77.6}`,
	}

	for _, body := range cases {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "accepted body without coordinates: %s", body)
	}
}

func TestAskForHelpConflictAfterRequestCloses(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockEcosystemCore(ctl)
	s := Server{store: a}

	// the blocking request resolves between the create attempt and the
	// lookup; the handler still answers 409
	a.EXPECT().CreateHelpRequest("requester-1", gomock.Any()).
		Return(nil, store.ErrMultipleRequestMade).Times(1)
	a.EXPECT().GetActiveHelpRequest("requester-1").Return(nil, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("requester-1"))
	router.POST("/", s.askForHelp)

	body := `{"category":"food","description":"x","type":"NEED","latitude":12.9,"longitude":77.6}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")
}

func TestHelpDetail(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockEcosystemCore(ctl)
	s := Server{store: a}

	help := &schema.HelpRequest{ID: uuid.New(), Category: "food"}
	a.EXPECT().GetHelp(help.ID.String()).Return(help, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/:helpID", s.helpDetail)

	req := httptest.NewRequest("GET", "/"+help.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestHelpDetailErrors(t *testing.T) {
	cases := []struct {
		storeErr error
		code     int
	}{
		{gorm.ErrRecordNotFound, http.StatusNotFound},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		ctl := gomock.NewController(t)

		a := mocks.NewMockEcosystemCore(ctl)
		s := Server{store: a}

		a.EXPECT().GetHelp(gomock.Any()).Return(nil, tc.storeErr).Times(1)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/:helpID", s.helpDetail)

		req := httptest.NewRequest("GET", "/some-help", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, tc.code, w.Code, "wrong status code for %v", tc.storeErr)
		ctl.Finish()
	}
}
