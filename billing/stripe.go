package billing

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"devis-backend/logger"
)

// StripeProvider implements Provider on top of the Stripe API.
type StripeProvider struct {
	client     *stripe.Client
	priceID    string
	successURL string
	cancelURL  string
	returnURL  string
}

// NewStripeProvider builds a provider for the given secret key and pro-plan
// price. URLs are where Stripe sends the user back after checkout/portal.
func NewStripeProvider(apiKey, priceID, successURL, cancelURL, returnURL string) (*StripeProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("stripe API key not provided")
	}
	if priceID == "" {
		return nil, fmt.Errorf("stripe pro price id not provided")
	}
	return &StripeProvider{
		client:     stripe.NewClient(apiKey, nil),
		priceID:    priceID,
		successURL: successURL,
		cancelURL:  cancelURL,
		returnURL:  returnURL,
	}, nil
}

func (s *StripeProvider) EnsureCustomer(ctx context.Context, userID, email string) (string, error) {
	params := &stripe.CustomerCreateParams{
		Email: stripe.String(email),
	}
	params.AddMetadata("user_id", userID)

	cust, err := s.client.V1Customers.Create(ctx, params)
	if err != nil {
		return "", fmt.Errorf("create stripe customer: %w", err)
	}
	logger.Info("stripe customer created",
		zap.String("user_id", userID),
		zap.String("customer_id", cust.ID))
	return cust.ID, nil
}

func (s *StripeProvider) IsSubscriber(ctx context.Context, customerID string) (bool, error) {
	if customerID == "" {
		return false, nil
	}
	params := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
		Status:   stripe.String(string(stripe.SubscriptionStatusActive)),
	}
	params.Limit = stripe.Int64(1)

	for sub, err := range s.client.V1Subscriptions.List(ctx, params) {
		if err != nil {
			return false, fmt.Errorf("list stripe subscriptions: %w", err)
		}
		if sub != nil {
			return true, nil
		}
	}
	return false, nil
}

func (s *StripeProvider) CheckoutURL(ctx context.Context, customerID string) (string, error) {
	params := &stripe.CheckoutSessionCreateParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer:   stripe.String(customerID),
		SuccessURL: stripe.String(s.successURL),
		CancelURL:  stripe.String(s.cancelURL),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				Price:    stripe.String(s.priceID),
				Quantity: stripe.Int64(1),
			},
		},
	}

	session, err := s.client.V1CheckoutSessions.Create(ctx, params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return session.URL, nil
}

func (s *StripeProvider) PortalURL(ctx context.Context, customerID string) (string, error) {
	params := &stripe.BillingPortalSessionCreateParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(s.returnURL),
	}

	session, err := s.client.V1BillingPortalSessions.Create(ctx, params)
	if err != nil {
		return "", fmt.Errorf("create billing portal session: %w", err)
	}
	return session.URL, nil
}
