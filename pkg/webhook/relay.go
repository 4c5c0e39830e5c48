// Package webhook forwards normalized lead payloads to the CRM. Delivery is
// best effort: failures are reported to the caller for logging and nothing
// is retried.
package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"velour_backend/internal/model"
	"velour_backend/pkg/config"
)

// LeadPayload is the CRM-ready shape of a submitted lead.
type LeadPayload struct {
	Source   string         `json:"source"`
	FormType model.FormType `json:"formType"`
	Contact  Contact        `json:"contact"`
	Message  string         `json:"message"`
	Meta     model.LeadMeta `json:"meta"`
}

type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

type Relay struct {
	urls   map[model.FormType]string
	client *http.Client
}

func NewRelay(cfg config.WebhookConfig) *Relay {
	return &Relay{
		urls: map[model.FormType]string{
			model.FormTypeVIP:          cfg.VIPURL,
			model.FormTypePrivateParty: cfg.PrivatePartyURL,
		},
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts the payload to the webhook configured for its form type. Form
// types without a webhook are a no-op.
func (r *Relay) Send(payload LeadPayload) error {
	url := r.urls[payload.FormType]
	if url == "" {
		return nil
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshaling webhook payload: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating webhook request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending webhook: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook failed for %s: %s", payload.FormType, resp.Status)
	}

	return nil
}
