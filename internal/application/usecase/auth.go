package usecase

import (
	"context"
	"errors"

	"coursemarket/internal/domain"
	"coursemarket/internal/infrastructure/cache"
	"coursemarket/internal/infrastructure/email"
	"coursemarket/internal/infrastructure/repository"
	"coursemarket/internal/infrastructure/security"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthUseCase struct {
	userRepo     *repository.UserRepository
	tokenCache   *cache.TokenCache
	hasher       *security.PasswordHasher
	tokenManager *security.TokenManager
	emailSender  *email.EmailSender
	log          *zap.SugaredLogger
}

func NewAuthUseCase(
	ur *repository.UserRepository,
	tc *cache.TokenCache,
	h *security.PasswordHasher,
	tm *security.TokenManager,
	es *email.EmailSender,
	log *zap.SugaredLogger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     ur,
		tokenCache:   tc,
		hasher:       h,
		tokenManager: tm,
		emailSender:  es,
		log:          log,
	}
}

func (uc *AuthUseCase) Register(ctx context.Context, username, userEmail, password string) (string, error) {
	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		ID:       uuid.New(),
		Username: username,
		Email:    userEmail,
		Password: hash,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return "", err
	}
	return user.ID.String(), nil
}

func (uc *AuthUseCase) Login(ctx context.Context, userEmail, password string) (string, string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return "", "", errors.New("invalid credentials")
	}
	if err := uc.hasher.Compare(user.Password, password); err != nil {
		return "", "", errors.New("invalid credentials")
	}
	return uc.generateAndSaveTokens(ctx, user.ID.String())
}

func (uc *AuthUseCase) Refresh(ctx context.Context, oldRefreshToken string) (string, string, error) {
	userID, err := uc.tokenManager.ValidateRefreshToken(oldRefreshToken)
	if err != nil {
		return "", "", err
	}

	cachedID, err := uc.tokenCache.CheckRefresh(ctx, oldRefreshToken)
	if err != nil || cachedID != userID {
		return "", "", errors.New("token revoked")
	}
	// Удаляем старый
	_ = uc.tokenCache.DeleteRefresh(ctx, oldRefreshToken)

	return uc.generateAndSaveTokens(ctx, userID)
}

func (uc *AuthUseCase) Logout(ctx context.Context, refreshToken string) error {
	return uc.tokenCache.DeleteRefresh(ctx, refreshToken)
}

func (uc *AuthUseCase) ValidateAccess(token string) (string, error) {
	return uc.tokenManager.ValidateAccessToken(token)
}

func (uc *AuthUseCase) generateAndSaveTokens(ctx context.Context, userID string) (string, string, error) {
	access, refresh, err := uc.tokenManager.Generate(userID)
	if err != nil {
		return "", "", err
	}

	if err := uc.tokenCache.SaveRefresh(ctx, userID, refresh); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (uc *AuthUseCase) ForgotPassword(ctx context.Context, userEmail string) error {
	user, err := uc.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		// Наружу не говорим, что email не найден
		return err
	}

	resetToken := uuid.New().String()

	if err := uc.tokenCache.SaveResetToken(ctx, resetToken, user.ID.String()); err != nil {
		return err
	}

	go func() {
		if err := uc.emailSender.SendResetEmail(user.Email, resetToken); err != nil {
			uc.log.Errorw("failed to send reset email", "email", user.Email, "error", err)
		}
	}()

	return nil
}

func (uc *AuthUseCase) ResetPassword(ctx context.Context, token, newPassword string) error {
	userIDStr, err := uc.tokenCache.GetResetToken(ctx, token)
	if err != nil {
		return errors.New("invalid or expired token")
	}

	userID, _ := uuid.Parse(userIDStr)

	hash, err := uc.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := uc.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	// Токен одноразовый
	_ = uc.tokenCache.DeleteResetToken(ctx, token)

	return nil
}
