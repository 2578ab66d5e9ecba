package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"gopkg.in/gomail.v2"
)

// Mailer sends the transactional emails of the CRM. Delivery is best-effort
// everywhere it is used: callers log failures and move on.
type Mailer interface {
	SendWelcomeEmail(email, name string) error
	SendConversionEmail(email, name, leadTitle string) error
}

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoMailer delivers through the Brevo transactional HTTP API.
type BrevoMailer struct {
	APIKey      string
	SenderName  string
	SenderEmail string

	// Endpoint and Client are overridable for tests.
	Endpoint string
	Client   *http.Client
}

func NewBrevoMailer(apiKey, senderName, senderEmail string) *BrevoMailer {
	return &BrevoMailer{
		APIKey:      apiKey,
		SenderName:  senderName,
		SenderEmail: senderEmail,
		Endpoint:    brevoEndpoint,
		Client:      &http.Client{},
	}
}

type brevoParty struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoPayload struct {
	Sender      brevoParty   `json:"sender"`
	To          []brevoParty `json:"to"`
	Subject     string       `json:"subject"`
	HTMLContent string       `json:"htmlContent"`
}

func (m *BrevoMailer) SendWelcomeEmail(email, name string) error {
	body := fmt.Sprintf(`
		<html><body>
		<h1>Bonjour %s,</h1>
		<p>Nous sommes ravis de vous compter parmi nos nouveaux contacts.</p>
		<p>Notre équipe reviendra vers vous très prochainement.</p>
		<br>
		<p>Cordialement,<br>L'équipe Commerciale</p>
		</body></html>
	`, name)
	return m.send(email, name, "Bienvenue dans notre réseau !", body)
}

func (m *BrevoMailer) SendConversionEmail(email, name, leadTitle string) error {
	body := fmt.Sprintf(`
		<html><body>
		<h1>Bonjour %s,</h1>
		<p>Bonne nouvelle : votre projet « %s » est confirmé.</p>
		<p>Vous recevrez votre facture sous peu. Merci de votre confiance !</p>
		<br>
		<p>Cordialement,<br>L'équipe Commerciale</p>
		</body></html>
	`, name, leadTitle)
	return m.send(email, name, fmt.Sprintf("Votre projet « %s » est confirmé 🎉", leadTitle), body)
}

func (m *BrevoMailer) send(toEmail, toName, subject, html string) error {
	if m.APIKey == "" {
		log.Printf("[mail][skip] Brevo API key missing, email to %s not sent", toEmail)
		return nil
	}

	payload := brevoPayload{
		Sender:      brevoParty{Name: m.SenderName, Email: m.SenderEmail},
		To:          []brevoParty{{Name: toName, Email: toEmail}},
		Subject:     subject,
		HTMLContent: html,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, m.Endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", m.APIKey)

	resp, err := m.Client.Do(req)
	if err != nil {
		return fmt.Errorf("brevo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("brevo returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// SMTPMailer is the SMTP alternative for deployments without a Brevo
// account. Same templates, delivered via gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func (m *SMTPMailer) SendWelcomeEmail(email, name string) error {
	body := fmt.Sprintf(`
		<h1>Bonjour %s,</h1>
		<p>Nous sommes ravis de vous compter parmi nos nouveaux contacts.</p>
		<p>Notre équipe reviendra vers vous très prochainement.</p>
		<p>Cordialement,<br>L'équipe Commerciale</p>
	`, name)
	return m.send(email, "Bienvenue dans notre réseau !", body)
}

func (m *SMTPMailer) SendConversionEmail(email, name, leadTitle string) error {
	body := fmt.Sprintf(`
		<h1>Bonjour %s,</h1>
		<p>Bonne nouvelle : votre projet « %s » est confirmé.</p>
		<p>Vous recevrez votre facture sous peu. Merci de votre confiance !</p>
		<p>Cordialement,<br>L'équipe Commerciale</p>
	`, name, leadTitle)
	return m.send(email, fmt.Sprintf("Votre projet « %s » est confirmé 🎉", leadTitle), body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
