package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/foundernet/ecosystem-api/logmodule"
	"github.com/foundernet/ecosystem-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// taskEnqueuer submits jobs to the background worker pool. It is what the
// server needs from machinery.
type taskEnqueuer interface {
	SendTask(signature *tasks.Signature) (*result.AsyncResult, error)
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.EcosystemCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// job pool enqueuer
	background taskEnqueuer

	// http client for calling external services
	httpClient *http.Client
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	backgroundEnqueuer *machinery.Server,
	jwtKey *rsa.PrivateKey) *Server {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	return &Server{
		store:         store.NewEcosystemStore(ormDB, mongoStore),
		mongoStore:    mongoStore,
		jwtPrivateKey: jwtKey,
		background:    backgroundEnqueuer,
		httpClient:    httpClient,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	// api route other than `/information` will apply the following middleware
	apiRoute.Use(s.clientVersionGateway())

	apiRoute.POST("/accounts", s.accountRegister)
	apiRoute.POST("/auth", s.requestJWT)

	// api route other than `/accounts` and `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.updateGeoPositionMiddleware)
	apiRoute.Use(s.recognizeAccountMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdateMetadata)
		accountRoute.DELETE("/me", s.accountDelete)
		accountRoute.GET("/me/locations", s.accountLocationHistory)
	}

	helpRoute := apiRoute.Group("/helps")
	{
		helpRoute.POST("", s.askForHelp)
		helpRoute.GET("", s.listNearbyHelps)
		helpRoute.PATCH("", s.resolveHelp)
		helpRoute.GET("/:helpID", s.helpDetail)
		helpRoute.POST("/:helpID/responses", s.respondToHelp)
	}

	responseRoute := apiRoute.Group("/responses")
	{
		responseRoute.PATCH("/:responseID/accept", s.acceptHelpResponse)
	}

	needRoute := apiRoute.Group("/needs")
	{
		needRoute.GET("", s.listNeeds)
		needRoute.POST("", s.createNeed)
		needRoute.DELETE("", s.deactivateNeed)
	}

	connectionRoute := apiRoute.Group("/connections")
	{
		connectionRoute.GET("", s.listConnections)
		connectionRoute.POST("", s.requestConnection)
		connectionRoute.PATCH("/:connectionID/accept", s.acceptConnection)
	}

	apiRoute.POST("/analysis", s.analyzeMarket)

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("/active-requests", s.metricActiveRequests)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"android": viper.GetStringMap("clients.android"),
			"ios":     viper.GetStringMap("clients.ios"),
			"docs":    viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
