// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/hotel-ledger/backend/internal/application/adapter"
	"github.com/hotel-ledger/backend/internal/domain/entity"
)

// GeminiService implements adapter.ExpenseTypeSuggester using Google Gemini.
// When no API key is configured the service reports itself unavailable and
// expense entry falls back to manual type selection.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestType analyzes a free-text expense description and proposes a type.
func (s *GeminiService) SuggestType(ctx context.Context, description string) (*adapter.ExpenseTypeSuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(description)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	suggestion, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return suggestion, nil
}

// buildPrompt creates the classification prompt for Gemini.
func (s *GeminiService) buildPrompt(description string) string {
	var sb strings.Builder

	sb.WriteString(`You classify hotel operating expenses into one of a fixed set of types.

TYPES (use EXACTLY one of these values):
- STAFF_SALARY: staff wages, salaries, advances, bonuses, housekeeping/reception/cook pay
- KITCHEN_GROCERY: food supplies, vegetables, milk, groceries, cooking gas, kitchen stock
- ELECTRICITY_WATER: electricity bills, water bills, generator fuel, power backup
- MAINTENANCE: repairs, plumbing, painting, AC service, furniture, linen replacement
- OTHER: anything that does not clearly fit the types above

EXPENSE DESCRIPTION:
`)
	sb.WriteString(description)
	sb.WriteString(`

Respond with a single JSON object:
{
  "type": "STAFF_SALARY" | "KITCHEN_GROCERY" | "ELECTRICITY_WATER" | "MAINTENANCE" | "OTHER",
  "confidence": 0.0-1.0,
  "reasoning": "one short sentence"
}

RESPONSE FORMAT: Return only the JSON object, no additional text.
`)

	return sb.String()
}

// geminiExpenseSuggestion represents the raw response from Gemini.
type geminiExpenseSuggestion struct {
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// parseResponse parses the Gemini response into an ExpenseTypeSuggestion.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (*adapter.ExpenseTypeSuggestion, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Strip markdown code fences if the model added them anyway.
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw geminiExpenseSuggestion
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	suggestion := &adapter.ExpenseTypeSuggestion{
		Type:       entity.ExpenseType(raw.Type),
		Confidence: raw.Confidence,
		Reasoning:  raw.Reasoning,
	}
	if !entity.IsValidExpenseType(suggestion.Type) {
		suggestion.Type = entity.ExpenseTypeOther
	}

	return suggestion, nil
}
