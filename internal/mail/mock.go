package mail

import "log"

// MockMailer is a mock implementation for local development (prints emails
// to the log instead of sending them).
type MockMailer struct{}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) SendWelcome(to, firstName string) error {
	log.Printf("[Mail] MOCK welcome -> %s (%s)", to, firstName)
	return nil
}

func (m *MockMailer) SendInvoiceCreated(to, clientName string, invoiceID int, total float64) error {
	log.Printf("[Mail] MOCK invoice created #%d (%.2f EUR) -> %s (%s)", invoiceID, total, to, clientName)
	return nil
}

func (m *MockMailer) SendInvoice(to, clientName string, invoiceID int, pdf []byte) error {
	log.Printf("[Mail] MOCK invoice #%d with %d-byte PDF -> %s (%s)", invoiceID, len(pdf), to, clientName)
	return nil
}

func (m *MockMailer) SendReminder(to, clientName string, invoiceID int, total float64) error {
	log.Printf("[Mail] MOCK reminder for invoice #%d (%.2f EUR) -> %s (%s)", invoiceID, total, to, clientName)
	return nil
}

func (m *MockMailer) SendPasswordReset(to, resetURL string) error {
	log.Printf("[Mail] MOCK password reset -> %s: %s", to, resetURL)
	return nil
}
