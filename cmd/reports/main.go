// Package main is the monthly report generation CLI. It closes out a month
// for one hotel or for every active hotel, writing the same snapshots the
// API's generate endpoint produces.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hotel-ledger/backend/config"
	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/application/usecase/report"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	"github.com/hotel-ledger/backend/internal/infra/db"
	"github.com/hotel-ledger/backend/internal/integration/email"
	"github.com/hotel-ledger/backend/internal/integration/persistence"
)

var (
	flagMonth   string
	flagHotelID string
	flagForce   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reports",
		Short: "Generate monthly report snapshots",
		Long: "Generates the monthly report snapshot for one hotel or for every " +
			"active hotel. Defaults to the previous calendar month. Existing " +
			"reports are skipped unless --force is set.",
		RunE: run,
	}

	rootCmd.Flags().StringVar(&flagMonth, "month", "", "month to close out, formatted YYYY-MM (default: previous month)")
	rootCmd.Flags().StringVar(&flagHotelID, "hotel-id", "", "generate for a single hotel instead of all active hotels")
	rootCmd.Flags().BoolVar(&flagForce, "force", false, "regenerate even when a report already exists")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	month, err := resolveMonth(flagMonth)
	if err != nil {
		return err
	}

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	gormDB := database.DB()
	hotelRepo := persistence.NewHotelRepository(gormDB)
	operatorRepo := persistence.NewOperatorRepository(gormDB)
	bookingRepo := persistence.NewBookingRepository(gormDB)
	incomeRepo := persistence.NewIncomeRepository(gormDB)
	expenseRepo := persistence.NewExpenseRepository(gormDB)
	reportRepo := persistence.NewReportRepository(gormDB)
	emailQueueRepo := persistence.NewEmailQueueRepository(gormDB)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	generateUseCase := report.NewGenerateReportUseCase(
		hotelRepo,
		operatorRepo,
		bookingRepo,
		incomeRepo,
		expenseRepo,
		reportRepo,
		emailService,
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	hotels, err := resolveHotels(ctx, hotelRepo, flagHotelID)
	if err != nil {
		return err
	}

	var generated, skipped, failed int
	for _, h := range hotels {
		output, err := generateUseCase.Execute(ctx, report.GenerateReportInput{
			HotelID: h.ID,
			Month:   month,
			Force:   flagForce,
		})
		if err != nil {
			failed++
			slog.Error("Report generation failed", "hotel_id", h.ID, "hotel", h.Name, "error", err)
			continue
		}
		if output.Skipped {
			skipped++
		} else {
			generated++
		}
	}

	fmt.Printf("month=%s hotels=%d generated=%d skipped=%d failed=%d\n",
		month.Format("2006-01"), len(hotels), generated, skipped, failed)

	if failed > 0 {
		return fmt.Errorf("report generation failed for %d hotel(s)", failed)
	}
	return nil
}

// resolveMonth parses --month, defaulting to the previous calendar month.
func resolveMonth(value string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return first.AddDate(0, -1, 0), nil
	}
	month, err := time.Parse("2006-01", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --month %q, expected YYYY-MM: %w", value, err)
	}
	return month, nil
}

// resolveHotels returns the target hotel set for this run.
func resolveHotels(ctx context.Context, hotelRepo adapter.HotelRepository, hotelID string) ([]*entity.Hotel, error) {
	if hotelID == "" {
		hotels, err := hotelRepo.FindAllActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list active hotels: %w", err)
		}
		return hotels, nil
	}

	id, err := uuid.Parse(hotelID)
	if err != nil {
		return nil, fmt.Errorf("invalid --hotel-id %q: %w", hotelID, err)
	}
	hotel, err := hotelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load hotel %s: %w", id, err)
	}
	return []*entity.Hotel{hotel}, nil
}
