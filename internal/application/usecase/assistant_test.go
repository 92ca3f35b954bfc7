package usecase

import (
	"context"
	"errors"
	"testing"

	"coursemarket/internal/infrastructure/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	lastPrompt string
	reply      string
	err        error
}

func (f *fakeGenerator) GenerateReply(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}

func TestAssistantChat_PromptContainsCatalogAndQuery(t *testing.T) {
	db := newTestDB(t)
	seedCourse(t, db, "Go Basics", 499, 20)
	seedCourse(t, db, "Advanced Go", 999, 35)

	gen := &fakeGenerator{reply: "Hi, I'm Kelly!"}
	uc := NewAssistantUseCase(repository.NewCourseRepository(db, nil), gen, zap.NewNop().Sugar())

	reply, err := uc.Chat(context.Background(), "which course is cheaper?")
	require.NoError(t, err)
	assert.Equal(t, "Hi, I'm Kelly!", reply)

	assert.Contains(t, gen.lastPrompt, "Go Basics")
	assert.Contains(t, gen.lastPrompt, "Advanced Go")
	assert.Contains(t, gen.lastPrompt, "which course is cheaper?")
	assert.Contains(t, gen.lastPrompt, "Kelly")
}

// Любая ошибка генерации превращается в фиксированный отказ без ретраев
func TestAssistantChat_FallbackOnError(t *testing.T) {
	db := newTestDB(t)
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	uc := NewAssistantUseCase(repository.NewCourseRepository(db, nil), gen, zap.NewNop().Sugar())

	reply, err := uc.Chat(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I couldn't process your request.", reply)
}
