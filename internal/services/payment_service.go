// internal/services/payment_service.go
package services

import (
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
	"gorm.io/gorm"

	"github.com/shoplane/pos-backend/internal/config"
	"github.com/shoplane/pos-backend/internal/utils"
)

// PaymentService creates card payment intents for POS checkouts. Cash
// sales never touch it.
type PaymentService struct {
	db     *gorm.DB
	config *config.Config
}

type CreatePaymentIntentRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Currency    string  `json:"currency,omitempty"`
	OrderNumber string  `json:"order_number,omitempty"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
	PaymentID    string `json:"payment_id"`
	Status       string `json:"status"`
}

func NewPaymentService(db *gorm.DB, config *config.Config) *PaymentService {
	// Initialize Stripe
	stripe.Key = config.Payment.StripeSecretKey

	return &PaymentService{
		db:     db,
		config: config,
	}
}

func (s *PaymentService) CreatePaymentIntent(req *CreatePaymentIntentRequest) (*PaymentIntentResponse, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = s.config.Payment.Currency
	}

	amountInCents := amountToCents(req.Amount)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountInCents),
		Currency: stripe.String(currency),
	}
	if req.OrderNumber != "" {
		params.AddMetadata("order_number", req.OrderNumber)
	}
	params.AddMetadata("store", s.config.Store.Name)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &PaymentIntentResponse{
		ClientSecret: pi.ClientSecret,
		PaymentID:    pi.ID,
		Status:       string(pi.Status),
	}, nil
}

// amountToCents converts a dollar amount to the integer cents Stripe
// expects. Rounded, not truncated: 19.99 is not exactly representable
// in binary and truncation would charge 1998.
func amountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
