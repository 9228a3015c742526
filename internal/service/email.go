package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"propertyhub-backend/internal/billing"
	"propertyhub-backend/internal/config"
	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/logger"
)

type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type emailService struct {
	client    mailSender
	fromEmail string
	fromName  string
}

// NewEmailService returns a SendGrid-backed sender, or a log-only one when
// no API key is configured.
func NewEmailService(cfg config.EmailConfig) EmailService {
	if cfg.SendGridAPIKey == "" {
		logger.Warn("SendGrid API key not configured, emails will only be logged")
		return &logEmailService{}
	}
	return newEmailService(sendgrid.NewSendClient(cfg.SendGridAPIKey), cfg.FromEmail, cfg.FromName)
}

func newEmailService(client mailSender, fromEmail, fromName string) *emailService {
	return &emailService{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendPaymentReceipt(ctx context.Context, tenant *domain.Tenant, payment *domain.Payment, balance billing.Balance) error {
	subject := fmt.Sprintf("Payment received: %s", payment.Type)
	body := fmt.Sprintf("Hello %s,\n\nWe received your %s payment of %s on %s.\n\nRemaining balance for this period: %s of %s.\n\nBest regards,\nThe PropertyHub Team",
		tenant.Name, payment.Type, payment.Amount.StringFixed(2), payment.PaidAt.Format("2006-01-02"),
		balance.Balance.StringFixed(2), balance.TotalDue.StringFixed(2))
	return s.send(ctx, tenant, subject, body)
}

func (s *emailService) SendBalanceReminder(ctx context.Context, tenant *domain.Tenant, balance billing.Balance) error {
	subject := "Your balance for this billing period"
	body := fmt.Sprintf("Hello %s,\n\nYou have an outstanding balance of %s (room: %s).\n\nPlease settle it at your earliest convenience.\n\nBest regards,\nThe PropertyHub Team",
		tenant.Name, balance.Balance.StringFixed(2), tenant.RoomTypeLabel())
	return s.send(ctx, tenant, subject, body)
}

func (s *emailService) send(ctx context.Context, tenant *domain.Tenant, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(tenant.Name, tenant.Email)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	logger.ExternalServiceCall("sendgrid", "send", "to", tenant.Email, "subject", subject)
	response, err := s.client.SendWithContext(ctx, message)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.ExternalServiceResult("sendgrid", "send", err, "to", tenant.Email)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

type logEmailService struct{}

func (logEmailService) SendPaymentReceipt(ctx context.Context, tenant *domain.Tenant, payment *domain.Payment, balance billing.Balance) error {
	logger.InfoContext(ctx, "Payment receipt (email disabled)",
		"tenantID", tenant.ID, "billType", payment.Type, "amount", payment.Amount.String(), "balance", balance.Balance.String())
	return nil
}

func (logEmailService) SendBalanceReminder(ctx context.Context, tenant *domain.Tenant, balance billing.Balance) error {
	logger.InfoContext(ctx, "Balance reminder (email disabled)",
		"tenantID", tenant.ID, "balance", balance.Balance.String())
	return nil
}
