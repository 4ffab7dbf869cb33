package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/logging"
	"github.com/dmitrijs2005/skillswap/internal/server/models"
	"github.com/go-resty/resty/v2"
)

const generatePath = "/v1beta/models/{model}:generateContent"

type GeminiConfig struct {
	APIKey            string
	BaseURL           string
	Model             string
	ChatTemperature   float64
	LessonTemperature float64
}

// GeminiClient talks to the Gemini generateContent REST endpoint.
type GeminiClient struct {
	cfg    GeminiConfig
	http   *resty.Client
	logger logging.Logger
}

func NewGeminiClient(cfg GeminiConfig, logger logging.Logger) *GeminiClient {
	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json")

	return &GeminiClient{cfg: cfg, http: c, logger: logger.With("module", "ai")}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature      float64        `json:"temperature"`
	ResponseMimeType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type generateRequest struct {
	SystemInstruction *content         `json:"systemInstruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (r generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

func (g *GeminiClient) generate(ctx context.Context, req generateRequest) (string, error) {
	resp, err := g.http.R().
		SetContext(ctx).
		SetPathParam("model", g.cfg.Model).
		SetQueryParam("key", g.cfg.APIKey).
		SetBody(req).
		Post(generatePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorCollaborator, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d", common.ErrorCollaborator, resp.StatusCode())
	}

	var out generateResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", common.ErrorCollaborator, err)
	}
	return out.text(), nil
}

func (g *GeminiClient) GenerateChatResponse(ctx context.Context, history []models.ChatTurn, personaBio string, currentUserID int64) (string, error) {
	contents := make([]content, 0, len(history))
	for _, t := range history {
		// attachment-only messages carry no text for the model
		if t.Text == "" {
			continue
		}
		role := "model"
		if t.SenderID == currentUserID {
			role = "user"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: t.Text}}})
	}

	req := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: SystemInstruction(personaBio, history, currentUserID)}}},
		Contents:          contents,
		GenerationConfig:  generationConfig{Temperature: g.cfg.ChatTemperature},
	}

	text, err := g.generate(ctx, req)
	if err != nil {
		g.logger.Error(ctx, "chat response failed", "error", err)
		return "", err
	}
	return text, nil
}

func (g *GeminiClient) GenerateLessonPlan(ctx context.Context, skill string) (*models.LessonPlan, error) {
	req := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: lessonPrompt(skill)}}}},
		GenerationConfig: generationConfig{
			Temperature:      g.cfg.LessonTemperature,
			ResponseMimeType: "application/json",
			ResponseSchema:   lessonSchema,
		},
	}

	text, err := g.generate(ctx, req)
	if err != nil {
		g.logger.Error(ctx, "lesson plan failed", "skill", skill, "error", err)
		return nil, err
	}

	plan, err := parseLessonPlan(text)
	if err != nil {
		g.logger.Warn(ctx, "malformed lesson plan", "skill", skill, "error", err)
		return nil, err
	}
	return plan, nil
}

func parseLessonPlan(text string) (*models.LessonPlan, error) {
	var plan models.LessonPlan
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorMalformedLessonPlan, err)
	}
	if plan.Plan == nil {
		return nil, fmt.Errorf("%w: missing plan array", common.ErrorMalformedLessonPlan)
	}
	return &plan, nil
}
