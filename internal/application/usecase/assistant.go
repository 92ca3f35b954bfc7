package usecase

import (
	"context"

	"coursemarket/internal/infrastructure/assistant"
	"coursemarket/internal/infrastructure/repository"

	"go.uber.org/zap"
)

// Ответ при любой ошибке генерации — как в виджете на фронте
const assistantFallback = "Sorry, I couldn't process your request."

type ReplyGenerator interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
}

type AssistantUseCase struct {
	courseRepo *repository.CourseRepository
	generator  ReplyGenerator
	log        *zap.SugaredLogger
}

func NewAssistantUseCase(cr *repository.CourseRepository, g ReplyGenerator, log *zap.SugaredLogger) *AssistantUseCase {
	return &AssistantUseCase{courseRepo: cr, generator: g, log: log}
}

// Chat отвечает на вопрос пользователя в контексте каталога.
// Ошибки генерации не ретраим, отдаем фиксированный отказ.
func (uc *AssistantUseCase) Chat(ctx context.Context, query string) (string, error) {
	courses, err := uc.courseRepo.GetAll(ctx)
	if err != nil {
		return "", err
	}

	prompt := assistant.BuildPrompt(courses, query)

	reply, err := uc.generator.GenerateReply(ctx, prompt)
	if err != nil {
		uc.log.Warnw("assistant generation failed", "error", err)
		return assistantFallback, nil
	}
	return reply, nil
}
