package impl

import (
	"context"
	"log/slog"

	deliverycontext "fuelradar/internal/delivery/context"
	"fuelradar/internal/domain/entity"
	domainerrors "fuelradar/internal/domain/errors"
	"fuelradar/internal/domain/service"
	"fuelradar/internal/errors"
	"fuelradar/internal/usecase"

	"go.uber.org/fx"
)

type authService struct {
	verifier     service.TelegramLoginVerifier
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Verifier     service.TelegramLoginVerifier
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		verifier:     params.Verifier,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// LoginWithTelegram verifies a Telegram Login Widget payload and issues an access token.
func (s *authService) LoginWithTelegram(ctx context.Context, login *entity.TelegramLogin) (*usecase.LoginResult, error) {
	if login == nil {
		return nil, domainerrors.ErrInvalidTelegramLogin
	}

	identity, err := s.verifier.Verify(login)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, domainerrors.ErrInvalidTelegramLogin.WithDetails(err.Error())
	}

	token, err := s.tokenService.GenerateAccessToken(identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Telegram login succeeded", slog.Int64("user_id", identity.UserID))

	return &usecase.LoginResult{Identity: identity, Token: token}, nil
}
