package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nutujean/lumina-vietii-backend/internal/payment"
	"github.com/Nutujean/lumina-vietii-backend/internal/store"
	"github.com/Nutujean/lumina-vietii-backend/internal/user"
)

func (s *Server) handleRoot(c *gin.Context) {
	c.String(http.StatusOK, "Lumina Vietii backend este online")
}

// handleStripeTest is an operator-facing connectivity check; unlike the
// checkout route it returns the raw upstream error for diagnostics.
func (s *Server) handleStripeTest(c *gin.Context) {
	bal, err := s.payments.RetrieveBalance(c.Request.Context())
	if err != nil {
		if errors.Is(err, payment.ErrNotConfigured) {
			log.Printf("stripe test: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"ok":    false,
				"error": "Stripe nu este configurat (fără cheie).",
			})
			return
		}
		log.Printf("stripe test: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":    false,
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"balance": bal,
	})
}

type checkoutRequest struct {
	PriceID string `json:"priceId"`
	Email   string `json:"email"`
}

func (s *Server) handleCreateCheckoutSession(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PriceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lipsește priceId"})
		return
	}

	url, err := s.payments.CreateCheckoutSession(c.Request.Context(), payment.CheckoutParams{
		PriceID:    req.PriceID,
		Email:      req.Email,
		SuccessURL: s.frontendURL + "/plata-succes",
		CancelURL:  s.frontendURL + "/plata-anulata",
	})
	if err != nil {
		if errors.Is(err, payment.ErrNotConfigured) {
			log.Printf("create-checkout-session: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Stripe nu este configurat (lipsește STRIPE_SECRET_KEY)",
			})
			return
		}
		// Customer-facing route: log the real error, return a fixed message.
		log.Printf("create-checkout-session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Eroare la crearea sesiunii de plată Stripe",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (s *Server) handleGetUserStatus(c *gin.Context) {
	status, err := s.users.GetStatus(c.Request.Context(), c.Param("email"))
	if err != nil {
		s.writeUserError(c, err, "citirea statusului")
		return
	}

	c.JSON(http.StatusOK, status)
}

type premiumRequest struct {
	Email string `json:"email"`
	// IsPremium stays untyped so any value the frontend sends coerces
	// through user.Truthy instead of failing the bind.
	IsPremium any `json:"isPremium"`
}

func (s *Server) handleSetPremium(c *gin.Context) {
	var req premiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lipsește emailul"})
		return
	}

	status, err := s.users.SetStatus(c.Request.Context(), req.Email, user.Truthy(req.IsPremium))
	if err != nil {
		s.writeUserError(c, err, "salvarea statusului")
		return
	}

	c.JSON(http.StatusOK, status)
}

func (s *Server) writeUserError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, user.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lipsește emailul"})
	case errors.Is(err, store.ErrUnavailable):
		log.Printf("%s: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Baza de date nu este conectată"})
	default:
		log.Printf("%s: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Eroare la baza de date"})
	}
}
