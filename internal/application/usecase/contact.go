package usecase

import (
	"context"

	"coursemarket/internal/domain"
	"coursemarket/internal/infrastructure/email"
	"coursemarket/internal/infrastructure/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContactUseCase struct {
	contactRepo  *repository.ContactRepository
	emailSender  *email.EmailSender
	supportEmail string
	log          *zap.SugaredLogger
}

func NewContactUseCase(cr *repository.ContactRepository, es *email.EmailSender, supportEmail string, log *zap.SugaredLogger) *ContactUseCase {
	return &ContactUseCase{
		contactRepo:  cr,
		emailSender:  es,
		supportEmail: supportEmail,
		log:          log,
	}
}

// Submit сохраняет сообщение и асинхронно пересылает его в поддержку.
// Ошибка отправки письма не ломает запрос — сообщение уже в БД.
func (uc *ContactUseCase) Submit(ctx context.Context, name, fromEmail, message string) error {
	msg := &domain.ContactMessage{
		ID:      uuid.New(),
		Name:    name,
		Email:   fromEmail,
		Message: message,
	}
	if err := uc.contactRepo.Create(ctx, msg); err != nil {
		return err
	}

	go func() {
		if err := uc.emailSender.SendContactNotification(uc.supportEmail, name, fromEmail, message); err != nil {
			uc.log.Errorw("failed to forward contact message", "error", err)
		}
	}()

	return nil
}
