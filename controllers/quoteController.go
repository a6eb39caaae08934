package controllers

import (
	"fmt"
	"strings"
	"time"

	"devis-backend/database"
	"devis-backend/logger"
	"devis-backend/middlewares"
	"devis-backend/models"
	"devis-backend/pricing"
	"devis-backend/render"
	"devis-backend/render/pdf"
	pdfgen "devis-backend/render/pdf/gofpdf"
	"devis-backend/theme"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// pdfGenerator is the capture backend used by the PDF export.
var pdfGenerator pdf.Generator = pdfgen.New()

type QuoteItemDTO struct {
	Title          string  `json:"title" validate:"required,min=1"`
	Subtitle       string  `json:"subtitle" validate:"omitempty"`
	Quantity       float64 `json:"quantity" validate:"gte=0"`
	UnitPriceMinor int64   `json:"unit_price_minor" validate:"gte=0"`
}

type QuoteCreateDTO struct {
	ClientID       uint           `json:"client_id" validate:"required"`
	IssueDate      *time.Time     `json:"issue_date"`
	ExpiryDate     *time.Time     `json:"expiry_date"`
	Terms          string         `json:"terms"`
	Items          []QuoteItemDTO `json:"items" validate:"dive"`
	VatRatePercent float64        `json:"vat_rate_percent" validate:"gte=0"`
	DiscountMinor  int64          `json:"discount_minor" validate:"gte=0"`
}

// POST /api/quote
// Copies the client into the quote and claims the next number atomically,
// both inside the request transaction.
func CreateQuote(c *fiber.Ctx) error {
	var in QuoteCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}
	userID := c.Locals("userID").(string)

	var client models.Client
	if err := db.Where("id = ? AND user_id = ?", in.ClientID, userID).First(&client).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unknown client")
	}

	number, err := database.ClaimQuoteNumber(db, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not claim quote number")
	}

	issueDate := time.Now()
	if in.IssueDate != nil {
		issueDate = *in.IssueDate
	}

	quote := models.Quote{
		UserID:         userID,
		QuoteNumber:    number,
		Status:         models.QuoteStatusDraft,
		IssueDate:      issueDate,
		ExpiryDate:     in.ExpiryDate,
		Terms:          strings.TrimSpace(in.Terms),
		ClientName:     client.Name,
		ClientEmail:    client.Email,
		ClientAddress:  client.Address,
		ClientTaxId:    client.TaxId,
		Items:          quoteItemsFromDTO(in.Items),
		VatRatePercent: in.VatRatePercent,
		DiscountMinor:  in.DiscountMinor,
	}

	if err := db.Create(&quote).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create quote")
	}

	logger.Info("quote created",
		zap.String("quote_id", quote.Id),
		zap.String("quote_number", quote.QuoteNumber))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"quote":  quote,
		"totals": pricingFor(quote),
	})
}

type QuoteUpdateDTO struct {
	IssueDate      *time.Time     `json:"issue_date"`
	ExpiryDate     *time.Time     `json:"expiry_date"`
	Terms          *string        `json:"terms"`
	Items          []QuoteItemDTO `json:"items" validate:"dive"`
	VatRatePercent *float64       `json:"vat_rate_percent" validate:"omitempty,gte=0"`
	DiscountMinor  *int64         `json:"discount_minor" validate:"omitempty,gte=0"`
}

// PUT /api/quote/:id
// Full-snapshot update: the item list replaces the stored one wholesale.
// Last write wins; concurrent edits are not merged.
func UpdateQuote(c *fiber.Ctx) error {
	var in QuoteUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	quote, err := loadQuote(db, c.Params("id"), c.Locals("userID").(string))
	if err != nil {
		return err
	}

	if in.IssueDate != nil {
		quote.IssueDate = *in.IssueDate
	}
	if in.ExpiryDate != nil {
		quote.ExpiryDate = in.ExpiryDate
	}
	if in.Terms != nil {
		quote.Terms = strings.TrimSpace(*in.Terms)
	}
	if in.VatRatePercent != nil {
		quote.VatRatePercent = *in.VatRatePercent
	}
	if in.DiscountMinor != nil {
		quote.DiscountMinor = *in.DiscountMinor
	}

	if in.Items != nil {
		if err := db.Where("quote_id = ?", quote.Id).Delete(&models.QuoteItem{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not replace quote items")
		}
		quote.Items = quoteItemsFromDTO(in.Items)
		for i := range quote.Items {
			quote.Items[i].QuoteID = quote.Id
		}
	}

	if err := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&quote).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update quote")
	}

	return c.JSON(fiber.Map{
		"quote":  quote,
		"totals": pricingFor(quote),
	})
}

type QuoteStatusDTO struct {
	Status string `json:"status" validate:"required"`
}

// PUT /api/quote/:id/status
func UpdateQuoteStatus(c *fiber.Ctx) error {
	var in QuoteStatusDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	if !models.IsValidQuoteStatus(in.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown quote status")
	}

	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	res := db.Model(&models.Quote{}).
		Where("id = ? AND user_id = ?", c.Params("id"), c.Locals("userID")).
		Update("status", in.Status)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update status")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "quote not found")
	}
	return c.JSON(fiber.Map{"message": "success", "status": in.Status})
}

// GET /api/quotes
func GetQuotes(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	var quotes []models.Quote
	db.Preload("Items", itemOrder).
		Where("user_id = ?", c.Locals("userID")).
		Order("created_at DESC").
		Find(&quotes)

	out := make([]fiber.Map, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, fiber.Map{"quote": q, "totals": pricingFor(q)})
	}
	return c.JSON(fiber.Map{
		"quotes":  out,
		"message": "success",
	})
}

// GET /api/quote/:id
func GetQuote(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	quote, err := loadQuote(db, c.Params("id"), c.Locals("userID").(string))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"quote":  quote,
		"totals": pricingFor(quote),
	})
}

// DELETE /api/quote/:id (archive, the roster never loses a priced document)
func ArchiveQuote(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	res := db.Model(&models.Quote{}).
		Where("id = ? AND user_id = ?", c.Params("id"), c.Locals("userID")).
		Update("status", models.QuoteStatusArchived)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not archive quote")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "quote not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}

// GET /api/quote/:id/preview
// Returns the composed visual tree. The dashboard paints it on screen; the
// PDF export paints the same tree on paper.
func PreviewQuote(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	doc, _, err := composeQuote(c, db)
	if err != nil {
		return err
	}
	return c.JSON(doc)
}

// GET /api/quote/:id/pdf
func ExportQuotePDF(c *fiber.Ctx) error {
	db, err := database.GetRequestDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "database unavailable")
	}

	doc, number, err := composeQuote(c, db)
	if err != nil {
		return err
	}

	pdfBytes, err := pdfGenerator.Generate(doc)
	if err != nil {
		logger.Error("quote pdf generation failed",
			zap.String("quote_number", number),
			zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "pdf generation failed")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.pdf"`, number))
	return c.Send(pdfBytes)
}

// composeQuote loads the quote, recomputes pricing, resolves the theme and
// composes the visual tree.
func composeQuote(c *fiber.Ctx, db *gorm.DB) (render.Document, string, error) {
	userID := c.Locals("userID").(string)

	quote, err := loadQuote(db, c.Params("id"), userID)
	if err != nil {
		return render.Document{}, "", err
	}

	var company models.Company
	db.Where("user_id = ?", userID).First(&company)

	var setting models.ThemeSetting
	db.Where("user_id = ?", userID).First(&setting)

	in := render.Input{
		Company: render.CompanyView{
			Name:    company.CompanyName,
			Email:   company.Email,
			Phone:   company.PhoneNumber,
			Address: company.Address,
			Website: company.Website,
			TaxID:   company.TaxId,
		},
		Client: render.ClientView{
			Name:    quote.ClientName,
			Email:   quote.ClientEmail,
			Address: quote.ClientAddress,
			TaxID:   quote.ClientTaxId,
		},
		Meta: render.MetaView{
			Number:     quote.QuoteNumber,
			IssueDate:  quote.IssueDate,
			ExpiryDate: quote.ExpiryDate,
			Terms:      quote.Terms,
			Status:     quote.Status,
		},
		Items:    lineItems(quote.Items),
		Currency: company.Currency,
		Locale:   company.Locale,
	}

	sel := theme.Selection{LayoutKey: setting.LayoutKey, Variables: []byte(setting.Variables)}
	doc := render.Compose(in, pricingFor(quote), sel)
	return doc, quote.QuoteNumber, nil
}

func loadQuote(db *gorm.DB, id, userID string) (models.Quote, error) {
	var quote models.Quote
	err := db.Preload("Items", itemOrder).
		Where("id = ? AND user_id = ?", id, userID).
		First(&quote).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return quote, fiber.NewError(fiber.StatusNotFound, "quote not found")
		}
		return quote, fiber.NewError(fiber.StatusInternalServerError, "could not load quote")
	}
	return quote, nil
}

func itemOrder(db *gorm.DB) *gorm.DB {
	return db.Order("quote_items.position")
}

func quoteItemsFromDTO(items []QuoteItemDTO) []models.QuoteItem {
	out := make([]models.QuoteItem, 0, len(items))
	for i, item := range items {
		out = append(out, models.QuoteItem{
			Position:       i,
			Title:          strings.TrimSpace(item.Title),
			Subtitle:       strings.TrimSpace(item.Subtitle),
			Quantity:       item.Quantity,
			UnitPriceMinor: item.UnitPriceMinor,
		})
	}
	return out
}

func lineItems(items []models.QuoteItem) []pricing.LineItem {
	out := make([]pricing.LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, pricing.LineItem{
			Title:          item.Title,
			Subtitle:       item.Subtitle,
			Quantity:       item.Quantity,
			UnitPriceMinor: item.UnitPriceMinor,
		})
	}
	return out
}

// pricingFor recomputes totals from the stored snapshot. Totals are derived
// data and are never read back from storage.
func pricingFor(quote models.Quote) pricing.Result {
	return pricing.Compute(lineItems(quote.Items), quote.DiscountMinor, quote.VatRatePercent)
}
