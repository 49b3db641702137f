package web

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Nutujean/lumina-vietii-backend/internal/payment"
	"github.com/Nutujean/lumina-vietii-backend/internal/user"
)

// StatusService reads and writes per-email premium status.
// Implementations: user.Service
type StatusService interface {
	GetStatus(ctx context.Context, rawEmail string) (*user.Status, error)
	SetStatus(ctx context.Context, rawEmail string, premium bool) (*user.Status, error)
}

// Server is the Lumina Vietii API server
type Server struct {
	users       StatusService
	payments    payment.Gateway
	frontendURL string
	router      *gin.Engine
}

// NewServer creates a new API server. frontendURL is the base for the
// checkout redirect targets.
func NewServer(users StatusService, payments payment.Gateway, frontendURL string) *Server {
	router := gin.Default()
	router.Use(cors.Default())

	s := &Server{
		users:       users,
		payments:    payments,
		frontendURL: frontendURL,
		router:      router,
	}

	router.GET("/", s.handleRoot)

	api := router.Group("/api")
	{
		api.GET("/stripe-test", s.handleStripeTest)
		api.POST("/create-checkout-session", s.handleCreateCheckoutSession)
		api.GET("/users/:email", s.handleGetUserStatus)
		api.POST("/users/premium", s.handleSetPremium)
	}

	return s
}

// Handler exposes the router for use with an http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the web server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
