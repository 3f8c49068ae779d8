package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/shivam222343/doantion-app/chat"
	"github.com/shivam222343/doantion-app/donation"
	"github.com/shivam222343/doantion-app/external/geoinfo"
	"github.com/shivam222343/doantion-app/gamification"
	"github.com/shivam222343/doantion-app/logmodule"
	"github.com/shivam222343/doantion-app/notification"
	"github.com/shivam222343/doantion-app/realtime"
	"github.com/shivam222343/doantion-app/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.MongoStore

	// HS256 secret the login tokens are signed with
	jwtSecret []byte

	// Live sessions
	hub *realtime.Hub

	// Actions
	donations     *donation.Manager
	requests      *donation.Arbiter
	reputation    *gamification.Engine
	notifications *notification.Center
	chats         *chat.Service

	// External services
	geoInfo geoinfo.GeoInfo
}

// NewServer new instance of server
func NewServer(
	mongoStore store.MongoStore,
	hub *realtime.Hub,
	donations *donation.Manager,
	requests *donation.Arbiter,
	reputation *gamification.Engine,
	notifications *notification.Center,
	chats *chat.Service,
	geoInfo geoinfo.GeoInfo,
	jwtSecret []byte) *Server {
	s := &Server{
		store:         mongoStore,
		jwtSecret:     jwtSecret,
		hub:           hub,
		donations:     donations,
		requests:      requests,
		reputation:    reputation,
		notifications: notifications,
		chats:         chats,
		geoInfo:       geoInfo,
	}
	s.handleSocketEvents()

	return s
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
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	socketRoute := r.Group("/ws")
	socketRoute.Use(logmodule.Ginrus("Socket"))
	socketRoute.GET("", s.websocket)

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)
	apiRoute.GET("/donations/geocoding/reverse", s.reverseGeocode)

	// api route other than the public ones will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	donationRoute := apiRoute.Group("/donations")
	{
		donationRoute.POST("/create", s.createDonation)
		donationRoute.GET("/nearby", s.nearbyDonations)
		donationRoute.GET("/my-donations", s.myDonations)
		donationRoute.GET("/:id", s.getDonation)
		donationRoute.PUT("/:id", s.updateDonation)
		donationRoute.DELETE("/:id", s.deleteDonation)
		donationRoute.PUT("/:id/received", s.markReceived)
		donationRoute.PUT("/:id/cancel", s.cancelDonation)
	}

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.POST("/create", s.createRequest)
		requestRoute.GET("/my-requests", s.myRequests)
		requestRoute.GET("/received", s.receivedRequests)
		requestRoute.GET("/:id", s.getRequest)
		requestRoute.PUT("/:id/accept", s.acceptRequest)
		requestRoute.PUT("/:id/reject", s.rejectRequest)
		requestRoute.POST("/:id/thanks", s.sendThanks)
	}

	userRoute := apiRoute.Group("/users")
	{
		userRoute.GET("/stats", s.userStats)
		userRoute.GET("/profile", s.userProfile)
		userRoute.GET("/profile/:userId", s.publicProfile)
		userRoute.GET("/leaderboard", s.leaderboard)
		userRoute.POST("/badges/:name/claim", s.claimBadge)
	}

	notificationRoute := apiRoute.Group("/notifications")
	{
		notificationRoute.GET("", s.listNotifications)
		notificationRoute.PUT("/read-all", s.markAllNotificationsRead)
		notificationRoute.DELETE("/delete-all", s.deleteAllNotifications)
		notificationRoute.PUT("/:id/read", s.markNotificationRead)
		notificationRoute.DELETE("/:id", s.deleteNotification)
	}

	chatRoute := apiRoute.Group("/chats")
	{
		chatRoute.POST("/start", s.startChat)
		chatRoute.GET("/:chatId/messages", s.chatMessages)
		chatRoute.POST("/:chatId/messages", s.sendMessage)
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

	abortWithError(c, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if err != nil {
		log.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
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
			"live_sessions":  s.hub.Sessions(),
			"system_version": "Donation 1.0",
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
