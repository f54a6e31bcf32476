package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements trip extraction and content fallbacks using
// Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	// extractModel is configured for JSON output; textModel returns plain text
	// for restaurant/attraction suggestions.
	extractModel *genai.GenerativeModel
	textModel    *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	extractModel := client.GenerativeModel("gemini-2.0-flash")
	extractModel.ResponseMIMEType = "application/json"
	extractModel.SetTemperature(0.3)

	textModel := client.GenerativeModel("gemini-2.0-flash")
	textModel.SetTemperature(0.7)

	return &GeminiProvider{
		client:       client,
		extractModel: extractModel,
		textModel:    textModel,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// ExtractTripProfile analyzes a free-text travel request and extracts
// structured trip parameters. now anchors relative date expressions.
func (p *GeminiProvider) ExtractTripProfile(ctx context.Context, request string, now time.Time) (*ExtractionResult, error) {
	prompt := buildExtractionPrompt(request, now)

	resp, err := p.extractModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	text, err := firstCandidateText(resp)
	if err != nil {
		return nil, err
	}

	// Clean up potential markdown fencing; JSON mode should prevent it, but
	// the parser must not depend on that.
	cleanJSON := cleanJSONString(text)

	var result ExtractionResult
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}

	return &result, nil
}

// SuggestRestaurant generates a single restaurant recommendation when the
// content catalog has no entry for the city. The output is an opaque
// "Name, City" string; callers must not depend on its exact content.
func (p *GeminiProvider) SuggestRestaurant(ctx context.Context, city, mealType, style string, day int) (string, error) {
	prompt := fmt.Sprintf(`Recommend a %s restaurant in %s for a %s traveler.
This is for day %d of the trip, so provide variety if possible.
Return only the restaurant name and city in the format: "Restaurant Name, %s"
Be specific and realistic. Return only the name and city, nothing else.`,
		mealType, city, style, day, city)

	resp, err := p.textModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	text, err := firstCandidateText(resp)
	if err != nil {
		return "", err
	}

	// Keep only the first entry of whatever came back.
	line := strings.TrimSpace(text)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	line = strings.Trim(line, `"`)
	if line == "" {
		return "", fmt.Errorf("empty restaurant suggestion")
	}
	if !strings.Contains(strings.ToLower(line), strings.ToLower(city)) {
		line = line + ", " + city
	}
	return line, nil
}

// SuggestAttractions generates up to max attraction recommendations as a
// semicolon-joined "Name, City" list.
func (p *GeminiProvider) SuggestAttractions(ctx context.Context, city, style string, day, max int) (string, error) {
	prompt := fmt.Sprintf(`Recommend %d popular tourist attractions or points of interest in %s
suitable for a %s travel style on day %d of a trip.
Return them in the format: "Attraction 1, %s; Attraction 2, %s"
Be specific with actual attraction names. Return only the attractions in the requested format, nothing else.`,
		max, city, style, day, city, city)

	resp, err := p.textModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	text, err := firstCandidateText(resp)
	if err != nil {
		return "", err
	}

	var parts []string
	for _, raw := range strings.Split(strings.ReplaceAll(text, "\n", ";"), ";") {
		cleaned := strings.Trim(raw, " -•\t\r\"")
		if cleaned == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(cleaned), strings.ToLower(city)) {
			cleaned = cleaned + ", " + city
		}
		parts = append(parts, cleaned)
		if len(parts) >= max {
			break
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("empty attraction suggestion")
	}
	return strings.Join(parts, "; "), nil
}

func buildExtractionPrompt(request string, now time.Time) string {
	return fmt.Sprintf(`Role: You are an expert at extracting travel preferences from natural language.
Context:
- Current Date: %s

Extract the following information from this travel request:
%s

Extract:
1. Origin city
2. Destination city
3. Start date (format: YYYY-MM-DD)
4. End date (format: YYYY-MM-DD)
5. Budget amount (numeric value)
6. Travel style (luxury, budget, moderate, adventure, relaxed)
7. Explicit preferences mentioned
8. Implicit preferences inferred

RULES:
- Resolve relative dates ("next Friday", "in two weeks") against the Current Date.
- If the travel style is not stated, infer it from the budget and tone; default to "moderate".
- "preferences" is a list of short free-text tags.
- Leave unknown fields empty; never invent dates or budgets.

Output JSON Schema:
{
  "origin": "string",
  "destination": "string",
  "start_date": "YYYY-MM-DD",
  "end_date": "YYYY-MM-DD",
  "budget": number,
  "travel_style": "luxury" | "budget" | "moderate" | "adventure" | "relaxed",
  "preferences": ["string"],
  "explicit_constraints": {},
  "implicit_preferences": {}
}
`, now.Format("2006-01-02"), request)
}

func firstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String(), nil
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
