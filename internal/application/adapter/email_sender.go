// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueWelcomeEmail queues a welcome email for a freshly registered operator.
	QueueWelcomeEmail(ctx context.Context, input QueueWelcomeInput) error

	// QueueMonthlyReportEmail queues a report-ready summary email.
	QueueMonthlyReportEmail(ctx context.Context, input QueueMonthlyReportInput) error
}

// QueueWelcomeInput represents the input for queueing a welcome email.
type QueueWelcomeInput struct {
	OperatorID    uuid.UUID
	OperatorEmail string
	OperatorName  string
	HotelName     string
}

// QueueMonthlyReportInput represents the input for queueing a report-ready email.
type QueueMonthlyReportInput struct {
	OperatorEmail string
	OperatorName  string
	HotelName     string
	Month         time.Time
	TotalRevenue  decimal.Decimal
	NetProfit     decimal.Decimal
	DueToOYO      decimal.Decimal
}
