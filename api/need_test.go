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

func TestCreateNeedDefaultsUrgency(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockEcosystemCore(ctl)
	s := Server{store: a}

	need := &schema.NeedHelp{
		ID:       uuid.New(),
		Founder:  "founder-1",
		Category: "funding",
		Urgency:  schema.URGENCY_MEDIUM,
		IsActive: true,
	}

	a.EXPECT().CreateNeed("founder-1", "funding", schema.URGENCY_MEDIUM, "seed round intro").
		Return(need, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("founder-1"))
	router.POST("/", s.createNeed)

	body := `{"category":"funding","description":"seed round intro"}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var jResp struct {
		Result schema.NeedHelp `json:"result"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, schema.URGENCY_MEDIUM, jResp.Result.Urgency)
}

func TestCreateNeedRejectsUnknownUrgency(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{store: mocks.NewMockEcosystemCore(ctl)}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("founder-1"))
	router.POST("/", s.createNeed)

	body := `{"category":"funding","urgency":"CRITICAL","description":"x"}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestListNeedsByFounder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockEcosystemCore(ctl)
	s := Server{store: a}

	a.EXPECT().ListActiveNeeds("founder-1").Return([]schema.NeedHelp{
		{ID: uuid.New(), Founder: "founder-1", Category: "hiring", Urgency: schema.URGENCY_HIGH, IsActive: true},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.listNeeds)

	req := httptest.NewRequest("GET", "/?founder=founder-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result []schema.NeedHelp `json:"result"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp.Result, 1)
}

func TestDeactivateNeedNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockEcosystemCore(ctl)
	s := Server{store: a}

	a.EXPECT().DeactivateNeed("founder-1").Return(store.ErrNeedNotExist).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("founder-1"))
	router.DELETE("/", s.deactivateNeed)

	req := httptest.NewRequest("DELETE", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}
