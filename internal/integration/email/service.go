// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueWelcomeEmail queues a welcome email for a freshly registered operator.
func (s *Service) QueueWelcomeEmail(ctx context.Context, input adapter.QueueWelcomeInput) error {
	subject := "Welcome to Hotel Ledger"

	templateData := map[string]interface{}{
		"operator_name": input.OperatorName,
		"hotel_name":    input.HotelName,
		"login_url":     s.appBaseURL + "/login",
	}

	job := entity.NewEmailJob(
		entity.TemplateWelcome,
		input.OperatorEmail,
		input.OperatorName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue welcome email",
			err,
		)
	}

	return nil
}

// QueueMonthlyReportEmail queues a report-ready summary email.
func (s *Service) QueueMonthlyReportEmail(ctx context.Context, input adapter.QueueMonthlyReportInput) error {
	monthLabel := input.Month.Format("January 2006")
	subject := fmt.Sprintf("%s report for %s is ready", monthLabel, input.HotelName)

	templateData := map[string]interface{}{
		"operator_name": input.OperatorName,
		"hotel_name":    input.HotelName,
		"month":         monthLabel,
		"total_revenue": input.TotalRevenue.StringFixed(2),
		"net_profit":    input.NetProfit.StringFixed(2),
		"due_to_oyo":    input.DueToOYO.StringFixed(2),
		"reports_url":   s.appBaseURL + "/reports",
	}

	job := entity.NewEmailJob(
		entity.TemplateMonthlyReportReady,
		input.OperatorEmail,
		input.OperatorName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue monthly report email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
