package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/foundernet/ecosystem-api/api/mocks"
	"github.com/foundernet/ecosystem-api/schema"
	"github.com/foundernet/ecosystem-api/store"
)

func TestRequestConnection(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockEcosystemCore(ctl)
	bg := &fakeEnqueuer{}
	s := Server{store: a, background: bg}

	connection := &schema.ConnectionRequest{
		ID:     uuid.New(),
		From:   "founder-1",
		To:     "founder-2",
		Status: schema.CONNECTION_PENDING,
		Source: "nearby",
	}

	a.EXPECT().CreateConnectionRequest("founder-1", "founder-2", "nearby", "collaboration").
		Return(connection, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("founder-1"))
	router.POST("/", s.requestConnection)

	body := `{"to":"founder-2","source":"nearby","purpose":"collaboration"}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	if assert.Len(t, bg.sent, 1, "notify job not enqueued") {
		sig := bg.sent[0]
		assert.Equal(t, "notify_new_connection", sig.Name)
		assert.Equal(t, "founder-2", sig.Args[2].Value)
	}
}

func TestRequestConnectionErrors(t *testing.T) {
	cases := []struct {
		storeErr error
		code     int
	}{
		{store.ErrConnectionExists, http.StatusConflict},
		{store.ErrSelfConnection, http.StatusBadRequest},
	}

	for _, tc := range cases {
		ctl := gomock.NewController(t)

		a := mocks.NewMockEcosystemCore(ctl)
		s := Server{store: a}

		a.EXPECT().CreateConnectionRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, tc.storeErr).Times(1)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.Use(testRequester("founder-1"))
		router.POST("/", s.requestConnection)

		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"to":"founder-2"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, tc.code, w.Code, "wrong status code for %v", tc.storeErr)
		ctl.Finish()
	}
}

func TestAcceptConnectionNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockEcosystemCore(ctl)
	s := Server{store: a}

	a.EXPECT().AcceptConnectionRequest("missing", "founder-2").
		Return(nil, store.ErrConnectionNotExist).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("founder-2"))
	router.PATCH("/:connectionID/accept", s.acceptConnection)

	req := httptest.NewRequest("PATCH", "/missing/accept", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestListConnectionsByDirection(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockEcosystemCore(ctl)
	s := Server{store: a}

	a.EXPECT().ListConnectionRequests("founder-1", "incoming").Return([]schema.ConnectionRequest{
		{ID: uuid.New(), From: "founder-2", To: "founder-1", Status: schema.CONNECTION_PENDING},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("founder-1"))
	router.GET("/", s.listConnections)

	req := httptest.NewRequest("GET", "/?direction=incoming", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result []schema.ConnectionRequest `json:"result"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp.Result, 1)
}
