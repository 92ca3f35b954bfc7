package assistant

import (
	"context"
	"fmt"
	"strings"

	"coursemarket/internal/domain"

	"google.golang.org/genai"
)

const model = "gemini-1.5-flash"

type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{client: client}, nil
}

func (g *GeminiClient) GenerateReply(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// BuildPrompt собирает промпт ассистента: персона + каталог курсов + вопрос пользователя.
func BuildPrompt(courses []domain.Course, userQuery string) string {
	var sb strings.Builder
	for _, c := range courses {
		sb.WriteString(fmt.Sprintf(
			"Title: %s,\nDescription: %s,\nPrice: ₹%d,\nDuration: %g hours,\nLectures: %d\n",
			c.Title, c.Description, c.Price, c.DurationHours, c.TotalLectures))
	}

	return fmt.Sprintf(`You are an assistant for CourseMarket, a website that sells courses.
You are given a question by the user and you are to provide a short and simple answer understandable by the user.
Greet the user. Your name is Kelly.
Here is the list of available courses:
%s
User Query: %s`, sb.String(), userQuery)
}
