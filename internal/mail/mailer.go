package mail

import (
	"fmt"
	"io"

	"mumanager-backend/internal/config"
	"mumanager-backend/internal/metrics"

	"gopkg.in/gomail.v2"
)

// Mailer is an interface for sending transactional emails
type Mailer interface {
	SendWelcome(to, firstName string) error
	SendInvoiceCreated(to, clientName string, invoiceID int, total float64) error
	SendInvoice(to, clientName string, invoiceID int, pdf []byte) error
	SendReminder(to, clientName string, invoiceID int, total float64) error
	SendPasswordReset(to, resetURL string) error
}

// SMTPMailer implements Mailer over a plain SMTP relay
type SMTPMailer struct {
	dialer    *gomail.Dialer
	from      string
	publicURL string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer:    gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password),
		from:      cfg.SMTP.From,
		publicURL: cfg.Server.PublicURL,
	}
}

func (m *SMTPMailer) send(kind, to, subject, htmlBody string, attach func(*gomail.Message)) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	if attach != nil {
		attach(msg)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		metrics.EmailsSentTotal.WithLabelValues(kind, "error").Inc()
		return fmt.Errorf("failed to send %s email: %w", kind, err)
	}
	metrics.EmailsSentTotal.WithLabelValues(kind, "success").Inc()
	return nil
}

// SendWelcome greets a freshly registered user
func (m *SMTPMailer) SendWelcome(to, firstName string) error {
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your account is ready. Log in at <a href=%q>%s</a> to set up your first company.</p>",
		firstName, m.publicURL, m.publicURL)
	return m.send("welcome", to, "Welcome to µManager", body, nil)
}

// SendInvoiceCreated confirms a freshly issued invoice to a client
func (m *SMTPMailer) SendInvoiceCreated(to, clientName string, invoiceID int, total float64) error {
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Invoice #%d (%.2f EUR) has been issued to you.</p>",
		clientName, invoiceID, total)
	return m.send("invoice_created", to, fmt.Sprintf("New invoice #%d", invoiceID), body, nil)
}

// SendInvoice delivers an invoice PDF to a client
func (m *SMTPMailer) SendInvoice(to, clientName string, invoiceID int, pdf []byte) error {
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Please find invoice #%d attached.</p>",
		clientName, invoiceID)
	return m.send("invoice", to, fmt.Sprintf("Invoice #%d", invoiceID), body, func(msg *gomail.Message) {
		msg.Attach(fmt.Sprintf("invoice-%d.pdf", invoiceID),
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(pdf)
				return err
			}))
	})
}

// SendReminder nudges a client about an unpaid invoice
func (m *SMTPMailer) SendReminder(to, clientName string, invoiceID int, total float64) error {
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>This is a friendly reminder that invoice #%d (%.2f EUR) is still awaiting payment.</p>",
		clientName, invoiceID, total)
	return m.send("reminder", to, fmt.Sprintf("Payment reminder for invoice #%d", invoiceID), body, nil)
}

// SendPasswordReset mails a single-use reset link
func (m *SMTPMailer) SendPasswordReset(to, resetURL string) error {
	body := fmt.Sprintf(
		"<p>A password reset was requested for your account.</p><p><a href=%q>Reset your password</a></p><p>The link expires in one hour. If you did not ask for this, ignore this email.</p>",
		resetURL)
	return m.send("password_reset", to, "Reset your password", body, nil)
}
