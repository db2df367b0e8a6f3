// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	domainerror "github.com/hotel-ledger/backend/internal/domain/error"
)

// LoginOperatorInput represents the input for operator login.
type LoginOperatorInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// LoginOperatorOutput represents the output of operator login.
type LoginOperatorOutput struct {
	AccessToken  string
	RefreshToken string
	Operator     *entity.Operator
	Hotel        *entity.Hotel
}

// LoginOperatorUseCase handles operator login logic.
type LoginOperatorUseCase struct {
	operatorRepo    adapter.OperatorRepository
	hotelRepo       adapter.HotelRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginOperatorUseCase creates a new LoginOperatorUseCase instance.
func NewLoginOperatorUseCase(
	operatorRepo adapter.OperatorRepository,
	hotelRepo adapter.HotelRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginOperatorUseCase {
	return &LoginOperatorUseCase{
		operatorRepo:    operatorRepo,
		hotelRepo:       hotelRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the operator login.
func (uc *LoginOperatorUseCase) Execute(ctx context.Context, input LoginOperatorInput) (*LoginOperatorOutput, error) {
	// Find operator by email
	operator, err := uc.operatorRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		// Return generic error to prevent email enumeration
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	// Verify password
	if err := uc.passwordService.VerifyPassword(operator.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	// Resolve the operator's hotel. A missing association is a reportable
	// state, not a crash; admins without a hotel may still log in.
	hotel, err := uc.hotelRepo.FindByOperatorID(ctx, operator.ID)
	if err != nil {
		if !operator.IsAdmin {
			return nil, domainerror.NewHotelError(
				domainerror.ErrCodeNoHotelForOperator,
				"no hotel associated with this account",
				domainerror.ErrNoHotelForOperator,
			)
		}
		hotel = nil
	}

	if hotel != nil && !hotel.IsActive {
		return nil, domainerror.NewHotelError(
			domainerror.ErrCodeHotelInactive,
			"hotel is inactive, contact support",
			domainerror.ErrHotelInactive,
		)
	}

	// Generate tokens
	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, operator.ID, operator.Email, input.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginOperatorOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Operator:     operator,
		Hotel:        hotel,
	}, nil
}
