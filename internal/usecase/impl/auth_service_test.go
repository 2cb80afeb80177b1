package impl

import (
	"context"
	"testing"
	"time"

	"fuelradar/internal/domain/entity"
	domainerrors "fuelradar/internal/domain/errors"
	mockSvc "fuelradar/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_LoginWithTelegram(t *testing.T) {
	verifier := mockSvc.NewMockTelegramLoginVerifier(t)
	tokens := mockSvc.NewMockTokenService(t)
	service := NewAuthService(AuthServiceParams{Verifier: verifier, TokenService: tokens, Logger: newDiscardLogger()})

	login := &entity.TelegramLogin{ID: 42, Username: "ana", AuthDate: time.Now(), Hash: "ab"}
	identity := &entity.TelegramIdentity{UserID: 42, Username: "ana"}
	token := &entity.AccessToken{Token: "jwt", ExpiresAt: time.Now().Add(time.Hour)}

	verifier.EXPECT().Verify(login).Return(identity, nil)
	tokens.EXPECT().GenerateAccessToken(identity).Return(token, nil)

	result, err := service.LoginWithTelegram(context.Background(), login)
	require.NoError(t, err)
	assert.Equal(t, identity, result.Identity)
	assert.Equal(t, token, result.Token)
}

func TestAuthService_LoginWithTelegram_Rejected(t *testing.T) {
	verifier := mockSvc.NewMockTelegramLoginVerifier(t)
	service := NewAuthService(AuthServiceParams{
		Verifier:     verifier,
		TokenService: mockSvc.NewMockTokenService(t),
		Logger:       newDiscardLogger(),
	})

	expired := &entity.TelegramLogin{ID: 1, AuthDate: time.Now().Add(-72 * time.Hour)}
	tampered := &entity.TelegramLogin{ID: 2, AuthDate: time.Now()}
	verifier.EXPECT().Verify(expired).Return(nil, domainerrors.ErrTelegramLoginExpired)
	verifier.EXPECT().Verify(tampered).Return(nil, errors.New("hash mismatch"))

	_, err := service.LoginWithTelegram(context.Background(), expired)
	requireAppError(t, err, "TELEGRAM_LOGIN_EXPIRED")

	_, err = service.LoginWithTelegram(context.Background(), tampered)
	requireAppError(t, err, "INVALID_TELEGRAM_LOGIN")

	_, err = service.LoginWithTelegram(context.Background(), nil)
	requireAppError(t, err, "INVALID_TELEGRAM_LOGIN")
}
