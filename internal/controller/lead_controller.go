package controller

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"velour_backend/internal/model"
	"velour_backend/pkg/config"
	"velour_backend/pkg/database"
	"velour_backend/pkg/ratelimit"
	"velour_backend/pkg/webhook"
)

type LeadInput struct {
	FormType string `json:"formType" validate:"required"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
	Honeypot string `json:"honeypot"`
}

var (
	leadLimiter ratelimit.Limiter
	leadRelay   *webhook.Relay
)

func InitLeadController(cfg *config.Config) {
	leadLimiter = ratelimit.New(cfg.RateLimit)
	leadRelay = webhook.NewRelay(cfg.Webhooks)
}

// clientIP prefers the proxy headers the hosting platform sets.
func clientIP(c *fiber.Ctx) string {
	if ip := c.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := c.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return "unknown"
}

// CreateLead handles POST /api/lead: honeypot, rate limit, per-form-type
// validation, best-effort persistence, best-effort CRM relay.
func CreateLead(c *fiber.Ctx) error {
	input := new(LeadInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Server error",
		})
	}

	// Bots fill the hidden field; pretend it worked and drop everything.
	if input.Honeypot != "" {
		return c.JSON(fiber.Map{"success": true})
	}

	ip := clientIP(c)

	if leadLimiter.IsRateLimited(ip) {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"success": false,
			"error":   "Too many requests. Please try again later.",
		})
	}

	if input.FormType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing formType",
		})
	}

	if model.FormType(input.FormType) == model.FormTypeVIP {
		if strings.TrimSpace(input.Name) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Name is required",
			})
		}
		if input.Email == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Email is required",
			})
		}
		if strings.TrimSpace(input.Phone) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Phone number is required",
			})
		}
	}

	meta := model.LeadMeta{
		UserAgent: c.Get("User-Agent"),
		IP:        ip,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	payload := webhook.LeadPayload{
		Source:   "website",
		FormType: model.FormType(input.FormType),
		Contact: webhook.Contact{
			Email: input.Email,
			Phone: input.Phone,
			Name:  input.Name,
		},
		Message: input.Message,
		Meta:    meta,
	}

	if jsonPayload, err := json.MarshalIndent(payload, "", "  "); err == nil {
		log.Printf("New lead: %s", jsonPayload)
	}

	persistLead(input, meta)

	// vip and private_party go to the CRM; failures never reach the caller.
	if err := leadRelay.Send(payload); err != nil {
		log.Printf("Webhook error: %v", err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// persistLead inserts the lead row. The insert is best effort: the lead is
// already in the log, so a database failure does not fail the submission.
func persistLead(input *LeadInput, meta model.LeadMeta) {
	db := database.GetDB()
	if db == nil {
		log.Printf("Lead store unavailable, skipping insert")
		return
	}

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		log.Printf("Could not marshal lead meta: %v", err)
	}

	lead := model.Lead{
		FormType: model.FormType(input.FormType),
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Message:  input.Message,
		Meta:     metaJSON,
	}

	if err := db.Create(&lead).Error; err != nil {
		log.Printf("Could not save lead: %v", err)
	}
}
