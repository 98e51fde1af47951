package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/go-resty/resty/v2"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// TwilioWhatsApp sends WhatsApp messages (text + media) through the Twilio
// REST API. It is used to deliver module PDFs directly to teacher phones.
type TwilioWhatsApp struct {
	accountSID string
	authToken  string
	fromNumber string
	client     *resty.Client
}

// NewTwilioWhatsApp builds the gateway from credentials. An incomplete
// credential set leaves the gateway unconfigured; sends then report a
// configuration failure instead of reaching the network.
func NewTwilioWhatsApp(accountSID, authToken, fromNumber string) *TwilioWhatsApp {
	// Accept either "+1415..." or "whatsapp:+1415..." from env and normalize
	fromNumber = strings.TrimPrefix(fromNumber, "whatsapp:")

	return &TwilioWhatsApp{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		client:     resty.New(),
	}
}

// IsConfigured reports whether Twilio WhatsApp credentials are available.
func (t *TwilioWhatsApp) IsConfigured() bool {
	return t.accountSID != "" && t.authToken != "" && t.fromNumber != ""
}

func (t *TwilioWhatsApp) Send(ctx context.Context, toNumber, body, mediaURL string) SendResult {
	if !t.IsConfigured() {
		msg := "Twilio WhatsApp service is not configured. Check TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN, and TWILIO_WHATSAPP_NUMBER."
		log.Println(msg)
		return SendResult{Success: false, Error: msg}
	}

	// Twilio expects the whatsapp: prefix on both ends
	form := map[string]string{
		"From": withWhatsAppPrefix(t.fromNumber),
		"To":   withWhatsAppPrefix(toNumber),
		"Body": body,
	}
	if mediaURL != "" {
		form["MediaUrl"] = mediaURL
	}

	url := fmt.Sprintf("%s/Accounts/%s/Messages.json", twilioAPIBase, t.accountSID)

	resp, err := t.client.R().
		SetContext(ctx).
		SetBasicAuth(t.accountSID, t.authToken).
		SetFormData(form).
		Post(url)
	if err != nil {
		log.Printf("Twilio WhatsApp send failed for %s: %v", toNumber, err)
		return SendResult{Success: false, Error: err.Error()}
	}

	if resp.StatusCode() >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		errMsg := resp.String()
		if json.Unmarshal(resp.Body(), &apiErr) == nil && apiErr.Message != "" {
			errMsg = apiErr.Message
		}
		log.Printf("Twilio WhatsApp send rejected for %s: %s", toNumber, errMsg)
		return SendResult{Success: false, Error: errMsg}
	}

	var msg struct {
		Sid    string `json:"sid"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body(), &msg); err != nil {
		return SendResult{Success: false, Error: fmt.Sprintf("failed to parse Twilio response: %v", err)}
	}

	log.Printf("Sent WhatsApp message to %s (sid=%s status=%s)", toNumber, msg.Sid, msg.Status)
	return SendResult{Success: true, MessageSID: msg.Sid, Status: msg.Status}
}

func withWhatsAppPrefix(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}
