package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/hotel-ledger/backend/internal/domain/entity"
	"github.com/hotel-ledger/backend/internal/integration/email/templates"
)

// fakeQueue is a map-backed email queue for worker tests.
type fakeQueue struct {
	jobs map[uuid.UUID]*entity.EmailJob
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{jobs: make(map[uuid.UUID]*entity.EmailJob)}
}

func (q *fakeQueue) Create(ctx context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *fakeQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var pending []*entity.EmailJob
	for _, job := range q.jobs {
		if job.IsReadyToProcess() {
			pending = append(pending, job)
		}
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (q *fakeQueue) Update(ctx context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *fakeQueue) GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	job, ok := q.jobs[id]
	if !ok {
		return nil, errors.New("job not found")
	}
	return job, nil
}

func (q *fakeQueue) GetByRecipient(ctx context.Context, email string) ([]*entity.EmailJob, error) {
	var out []*entity.EmailJob
	for _, job := range q.jobs {
		if job.RecipientEmail == email {
			out = append(out, job)
		}
	}
	return out, nil
}

func (q *fakeQueue) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	return 0, nil
}

func newTestWorker(t *testing.T) (*Worker, *fakeQueue, *MockEmailSender) {
	t.Helper()

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	queue := newFakeQueue()
	sender := NewMockEmailSender()
	worker := NewWorker(queue, sender, renderer, DefaultWorkerConfig())
	return worker, queue, sender
}

func TestWorker(t *testing.T) {
	ctx := context.Background()

	t.Run("sends a queued welcome email and marks it sent", func(t *testing.T) {
		worker, queue, sender := newTestWorker(t)

		job := entity.NewEmailJob(
			entity.TemplateWelcome,
			"owner@example.com",
			"Asha",
			"Welcome to Hotel Ledger",
			map[string]interface{}{
				"operator_name": "Asha",
				"hotel_name":    "Sunrise Residency",
				"login_url":     "http://localhost:5173/login",
			},
		)
		if err := queue.Create(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker.ProcessNow(ctx)

		if len(sender.SentEmails) != 1 {
			t.Fatalf("expected 1 email sent, got %d", len(sender.SentEmails))
		}
		sent := sender.SentEmails[0]
		if sent.To != "owner@example.com" {
			t.Errorf("expected recipient owner@example.com, got %s", sent.To)
		}
		if sent.HTML == "" || sent.Text == "" {
			t.Error("expected both HTML and text bodies to be rendered")
		}

		stored, err := queue.GetByID(ctx, job.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Status != entity.EmailStatusSent {
			t.Errorf("expected status sent, got %s", stored.Status)
		}
		if stored.ProviderID == "" {
			t.Error("expected provider ID recorded on the job")
		}
	})

	t.Run("renders report numbers into the report-ready email", func(t *testing.T) {
		worker, queue, sender := newTestWorker(t)

		job := entity.NewEmailJob(
			entity.TemplateMonthlyReportReady,
			"owner@example.com",
			"Asha",
			"May 2025 report for Sunrise Residency is ready",
			map[string]interface{}{
				"operator_name": "Asha",
				"hotel_name":    "Sunrise Residency",
				"month":         "May 2025",
				"total_revenue": "4800.00",
				"net_profit":    "4000.00",
				"due_to_oyo":    "1500.00",
				"reports_url":   "http://localhost:5173/reports",
			},
		)
		if err := queue.Create(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker.ProcessNow(ctx)

		if len(sender.SentEmails) != 1 {
			t.Fatalf("expected 1 email sent, got %d", len(sender.SentEmails))
		}
		for _, want := range []string{"May 2025", "4800.00", "4000.00", "1500.00"} {
			if !strings.Contains(sender.SentEmails[0].Text, want) {
				t.Errorf("expected text body to contain %q", want)
			}
		}
	})

	t.Run("temporary failure schedules a retry", func(t *testing.T) {
		worker, queue, sender := newTestWorker(t)
		sender.SetFailure(errors.New("rate limited: 429"), false)

		job := entity.NewEmailJob(
			entity.TemplateWelcome,
			"owner@example.com",
			"Asha",
			"Welcome to Hotel Ledger",
			map[string]interface{}{"operator_name": "Asha"},
		)
		if err := queue.Create(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker.ProcessNow(ctx)

		stored, err := queue.GetByID(ctx, job.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Status != entity.EmailStatusPending {
			t.Errorf("expected job back to pending for retry, got %s", stored.Status)
		}
		if stored.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", stored.Attempts)
		}
	})

	t.Run("permanent failure marks the job failed", func(t *testing.T) {
		worker, queue, sender := newTestWorker(t)
		sender.SetFailure(errors.New("invalid recipient"), true)

		job := entity.NewEmailJob(
			entity.TemplateWelcome,
			"not-an-email",
			"Asha",
			"Welcome to Hotel Ledger",
			map[string]interface{}{"operator_name": "Asha"},
		)
		if err := queue.Create(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker.ProcessNow(ctx)

		stored, err := queue.GetByID(ctx, job.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Status != entity.EmailStatusFailed {
			t.Errorf("expected job failed, got %s", stored.Status)
		}
	})

	t.Run("unknown template fails permanently", func(t *testing.T) {
		worker, queue, sender := newTestWorker(t)

		job := entity.NewEmailJob(
			entity.EmailTemplateType("no_such_template"),
			"owner@example.com",
			"Asha",
			"Subject",
			map[string]interface{}{},
		)
		if err := queue.Create(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker.ProcessNow(ctx)

		if len(sender.SentEmails) != 0 {
			t.Errorf("expected nothing sent, got %d", len(sender.SentEmails))
		}
		stored, err := queue.GetByID(ctx, job.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Status != entity.EmailStatusFailed {
			t.Errorf("expected job failed, got %s", stored.Status)
		}
	})
}
