package billing

import "context"

// Provider answers the only billing questions this product asks: is the user
// a subscriber, and where do they go to pay or manage their plan.
type Provider interface {
	// EnsureCustomer returns the provider-side customer id for a user,
	// creating it on first use.
	EnsureCustomer(ctx context.Context, userID, email string) (string, error)
	// IsSubscriber reports whether the customer has an active subscription.
	IsSubscriber(ctx context.Context, customerID string) (bool, error)
	// CheckoutURL returns a hosted checkout page for the pro plan.
	CheckoutURL(ctx context.Context, customerID string) (string, error)
	// PortalURL returns the hosted self-service billing portal.
	PortalURL(ctx context.Context, customerID string) (string, error)
}

// Disabled is the provider used when no billing keys are configured: nobody
// is a subscriber and there is nothing to check out.
type Disabled struct{}

func (Disabled) EnsureCustomer(ctx context.Context, userID, email string) (string, error) {
	return "", nil
}

func (Disabled) IsSubscriber(ctx context.Context, customerID string) (bool, error) {
	return false, nil
}

func (Disabled) CheckoutURL(ctx context.Context, customerID string) (string, error) {
	return "", nil
}

func (Disabled) PortalURL(ctx context.Context, customerID string) (string, error) {
	return "", nil
}
