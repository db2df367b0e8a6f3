// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/hotel-ledger/backend/internal/application/adapter"
)

// LogoutOperatorInput represents the input for operator logout.
type LogoutOperatorInput struct {
	RefreshToken string
}

// LogoutOperatorOutput represents the output of operator logout.
type LogoutOperatorOutput struct {
	Message string
}

// LogoutOperatorUseCase handles operator logout logic.
type LogoutOperatorUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutOperatorUseCase creates a new LogoutOperatorUseCase instance.
func NewLogoutOperatorUseCase(tokenService adapter.TokenService) *LogoutOperatorUseCase {
	return &LogoutOperatorUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the operator logout by invalidating the refresh token.
func (uc *LogoutOperatorUseCase) Execute(ctx context.Context, input LogoutOperatorInput) (*LogoutOperatorOutput, error) {
	// Invalidate refresh token (ignore errors as the token might already be invalid)
	_ = uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)

	return &LogoutOperatorOutput{
		Message: "Successfully logged out",
	}, nil
}
