// Package mailer relays contact-form submissions over outbound SMTP.
package mailer

import (
	"fmt"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"
)

// Config holds SMTP settings for the contact relay. All values are
// environment-sourced; the required ones have no defaults.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	To       string
}

// LoadConfig reads SMTP configuration from the environment. It fails fast
// when SMTP_HOST, SMTP_USER, SMTP_PASS, or CONTACT_TO is missing.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Host:     os.Getenv("SMTP_HOST"),
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASS"),
		To:       os.Getenv("CONTACT_TO"),
	}
	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" || cfg.To == "" {
		return nil, fmt.Errorf("missing SMTP_HOST, SMTP_USER, SMTP_PASS, or CONTACT_TO in environment")
	}

	cfg.Port = 587
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT value %q: %w", raw, err)
		}
		cfg.Port = port
	}

	return cfg, nil
}

// Mailer sends contact-form messages to a fixed recipient.
type Mailer struct {
	client *mail.Client
	from   string
	to     string
}

// New builds a Mailer with an authenticated SMTP client.
func New(cfg *Config) (*Mailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &Mailer{client: client, from: cfg.Username, to: cfg.To}, nil
}

// SendContact relays one contact-form submission. The sender email is
// optional; an empty value is reported as not provided.
func (m *Mailer) SendContact(name, email, subject, message string) error {
	if email == "" {
		email = "Not provided"
	}

	body := fmt.Sprintf("New contact form submission\n\nName: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n",
		name, email, subject, message)

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(m.to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject("Contact Form: " + subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
