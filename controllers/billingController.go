package controllers

import (
	"devis-backend/billing"
	"devis-backend/database"
	"devis-backend/models"

	"github.com/gofiber/fiber/v2"
)

var billingProvider billing.Provider = billing.Disabled{}

// SetBillingProvider wires the payments provider used by billing endpoints
// and the pro-layout gate. Defaults to billing.Disabled.
func SetBillingProvider(p billing.Provider) {
	if p != nil {
		billingProvider = p
	}
}

// isSubscriber resolves the current user's subscription status through the
// configured provider.
func isSubscriber(c *fiber.Ctx) (bool, error) {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return false, err
	}

	var user models.User
	if err := db.Where("id = ?", c.Locals("userID")).First(&user).Error; err != nil {
		return false, err
	}
	if user.StripeCustomerID == "" {
		return false, nil
	}
	return billingProvider.IsSubscriber(c.Context(), user.StripeCustomerID)
}

// ensureCustomer returns the user's provider-side customer id, creating and
// persisting it on first use.
func ensureCustomer(c *fiber.Ctx) (string, error) {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return "", err
	}

	var user models.User
	if err := db.Where("id = ?", c.Locals("userID")).First(&user).Error; err != nil {
		return "", err
	}
	if user.StripeCustomerID != "" {
		return user.StripeCustomerID, nil
	}

	customerID, err := billingProvider.EnsureCustomer(c.Context(), user.Id, user.Email)
	if err != nil {
		return "", err
	}
	if customerID == "" {
		return "", nil
	}

	err = db.Model(&models.User{}).
		Where("id = ?", user.Id).
		Update("stripe_customer_id", customerID).Error
	if err != nil {
		return "", err
	}
	return customerID, nil
}

// GET /api/billing/status
func GetBillingStatus(c *fiber.Ctx) error {
	subscribed, err := isSubscriber(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not check subscription")
	}
	return c.JSON(fiber.Map{"subscribed": subscribed})
}

// POST /api/billing/checkout
func CreateCheckout(c *fiber.Ctx) error {
	customerID, err := ensureCustomer(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not prepare checkout")
	}
	if customerID == "" {
		return fiber.NewError(fiber.StatusServiceUnavailable, "billing not configured")
	}

	url, err := billingProvider.CheckoutURL(c.Context(), customerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create checkout session")
	}
	return c.JSON(fiber.Map{"url": url})
}

// POST /api/billing/portal
func CreatePortal(c *fiber.Ctx) error {
	customerID, err := ensureCustomer(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not prepare portal")
	}
	if customerID == "" {
		return fiber.NewError(fiber.StatusServiceUnavailable, "billing not configured")
	}

	url, err := billingProvider.PortalURL(c.Context(), customerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create portal session")
	}
	return c.JSON(fiber.Map{"url": url})
}
