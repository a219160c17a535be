//go:generate mockery --name PlanGenerator --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go_5_path_gen/internal/config"
	"go_5_path_gen/internal/middleware"
	"go_5_path_gen/internal/model"

	openai "github.com/sashabaranov/go-openai"
)

// PlanGenerator は学習計画の下書き (モジュール一覧) を生成するインターフェースです。
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, req *model.GeneratePathRequest) ([]model.DraftModule, error)
}

type openAIPlanGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewOpenAIPlanGenerator(cfg *config.Config) PlanGenerator {
	return &openAIPlanGenerator{
		client:      openai.NewClient(cfg.OpenAI.APIKey),
		model:       cfg.OpenAI.Model,
		temperature: cfg.OpenAI.Temperature,
	}
}

const planSystemPrompt = `You are an expert curriculum designer. ` +
	`You respond only with valid JSON. The JSON object must have a single key "modules" ` +
	`whose value is an array of objects with keys "title", "duration" and "description". ` +
	`Do not include markdown fences or any text outside the JSON object.`

func (g *openAIPlanGenerator) GeneratePlan(ctx context.Context, req *model.GeneratePathRequest) ([]model.DraftModule, error) {
	logger := middleware.GetLogger(ctx)

	userPrompt := buildPlanPrompt(req)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: planSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		logger.Error("OpenAI chat completion failed", "error", err, "model", g.model)
		return nil, fmt.Errorf("openAIPlanGenerator.GeneratePlan: %w", err)
	}
	if len(resp.Choices) == 0 {
		logger.Error("OpenAI returned no choices", "model", g.model)
		return nil, model.ErrGenerationFailed
	}

	modules, err := parsePlanJSON(resp.Choices[0].Message.Content)
	if err != nil {
		logger.Error("Failed to parse generated plan", "error", err)
		return nil, model.ErrGenerationFailed
	}

	logger.Info("Plan generated", "goal", req.Goal, "modules", len(modules))
	return modules, nil
}

func buildPlanPrompt(req *model.GeneratePathRequest) string {
	return fmt.Sprintf(
		"Create a learning path for the goal %q. Skill level: %s. "+
			"Total duration: %s. Daily commitment: %s. "+
			"Split the plan into sequential modules. Each module needs a concise title, "+
			"an estimated duration and a short description of what to study.",
		req.Goal, req.SkillLevel, req.Duration, req.DailyCommitment,
	)
}

// parsePlanJSON はLLMの応答をモジュール一覧に変換します。
// JSONモード指定でもコードフェンス付きで返るケースがあるため剥がしてからパースします。
func parsePlanJSON(content string) ([]model.DraftModule, error) {
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var payload struct {
		Modules []model.DraftModule `json:"modules"`
	}
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return nil, fmt.Errorf("parsePlanJSON: %w", err)
	}
	if len(payload.Modules) == 0 {
		return nil, fmt.Errorf("parsePlanJSON: plan contains no modules")
	}
	for i, m := range payload.Modules {
		if strings.TrimSpace(m.Title) == "" {
			return nil, fmt.Errorf("parsePlanJSON: module %d has empty title", i)
		}
	}
	return payload.Modules, nil
}
