package service

import (
	"context"
	"fmt"

	"seller-wallet-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	opsEmail  string
}

func NewEmailService(apiKey, fromEmail, fromName, opsEmail string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		opsEmail:  opsEmail,
	}
}

func (s *emailService) SendCreditRequestProcessed(ctx context.Context, email, name string, amount decimal.Decimal, status domain.CreditRequestStatus) error {
	var subject, body string
	switch status {
	case domain.CreditRequestStatusAccepted:
		subject = "Your credit request was accepted"
		body = fmt.Sprintf("Hello %s,\n\nYour credit request for %s has been accepted and added to your balance.", name, amount.StringFixed(2))
	case domain.CreditRequestStatusRejected:
		subject = "Your credit request was rejected"
		body = fmt.Sprintf("Hello %s,\n\nYour credit request for %s has been rejected. Your balance is unchanged.", name, amount.StringFixed(2))
	default:
		return fmt.Errorf("no notification for status %q", status)
	}

	return s.send(email, name, subject, body)
}

func (s *emailService) SendOpsAlert(ctx context.Context, subject, message string) error {
	return s.send(s.opsEmail, "Operations", subject, message)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
