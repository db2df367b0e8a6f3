// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
)

// RegisterOperatorInput represents the input for operator registration.
// Registration creates the operator and their hotel in one step since the
// tenancy model is strictly one hotel per operator.
type RegisterOperatorInput struct {
	Email         string
	Name          string
	Password      string
	HotelName     string
	HotelCode     string
	QRRate        int64
	Address       string
	ContactNumber string
}

// RegisterOperatorOutput represents the output of operator registration.
type RegisterOperatorOutput struct {
	AccessToken  string
	RefreshToken string
	Operator     *entity.Operator
	Hotel        *entity.Hotel
}

// RegisterOperatorUseCase handles operator registration logic.
type RegisterOperatorUseCase struct {
	operatorRepo    adapter.OperatorRepository
	hotelRepo       adapter.HotelRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	emailService    adapter.EmailService
}

// NewRegisterOperatorUseCase creates a new RegisterOperatorUseCase instance.
func NewRegisterOperatorUseCase(
	operatorRepo adapter.OperatorRepository,
	hotelRepo adapter.HotelRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	emailService adapter.EmailService,
) *RegisterOperatorUseCase {
	return &RegisterOperatorUseCase{
		operatorRepo:    operatorRepo,
		hotelRepo:       hotelRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		emailService:    emailService,
	}
}

// Execute performs the operator registration.
func (uc *RegisterOperatorUseCase) Execute(ctx context.Context, input RegisterOperatorInput) (*RegisterOperatorOutput, error) {
	// Validate email format
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	// Validate password strength
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	if strings.TrimSpace(input.HotelName) == "" || strings.TrimSpace(input.HotelCode) == "" {
		return nil, domainerror.NewHotelError(
			domainerror.ErrCodeMissingHotelField,
			"hotel name and code are required",
			nil,
		)
	}

	if input.QRRate < 0 {
		return nil, domainerror.NewHotelError(
			domainerror.ErrCodeInvalidQRRate,
			"QR rate must not be negative",
			domainerror.ErrInvalidQRRate,
		)
	}

	// Check if email already exists
	exists, err := uc.operatorRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	// Check if hotel code is taken
	codeExists, err := uc.hotelRepo.ExistsByCode(ctx, input.HotelCode)
	if err != nil {
		return nil, fmt.Errorf("failed to check hotel code existence: %w", err)
	}
	if codeExists {
		return nil, domainerror.NewHotelError(
			domainerror.ErrCodeHotelCodeExists,
			"hotel code already exists",
			domainerror.ErrHotelCodeExists,
		)
	}

	// Hash password
	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Create operator and their hotel
	operator := entity.NewOperator(input.Email, input.Name, passwordHash)
	if err := uc.operatorRepo.Create(ctx, operator); err != nil {
		return nil, fmt.Errorf("failed to create operator: %w", err)
	}

	hotel := entity.NewHotel(operator.ID, input.HotelName, input.HotelCode, input.QRRate, input.Address, input.ContactNumber)
	if err := uc.hotelRepo.Create(ctx, hotel); err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}

	// Queue welcome email; registration succeeds even if queueing fails
	if uc.emailService != nil {
		if err := uc.emailService.QueueWelcomeEmail(ctx, adapter.QueueWelcomeInput{
			OperatorID:    operator.ID,
			OperatorEmail: operator.Email,
			OperatorName:  operator.Name,
			HotelName:     hotel.Name,
		}); err != nil {
			slog.Warn("Failed to queue welcome email", "operator_id", operator.ID, "error", err)
		}
	}

	// Generate tokens
	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, operator.ID, operator.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RegisterOperatorOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Operator:     operator,
		Hotel:        hotel,
	}, nil
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
