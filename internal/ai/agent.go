package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Fallback messages surfaced to the user when the AI collaborator is
// unavailable. AI failures never propagate into billing state.
const (
	MsgServiceUnavailable = "AI service is not available."
	MsgDescriptionFailed  = "Failed to generate description."
	MsgInsightsFailed     = "Failed to generate insights."
)

// Agent wraps the Gemini text-completion calls used by the inventory and
// reports screens. Both calls are best-effort.
type Agent struct {
	apiKey string
}

func NewAgent(apiKey string) *Agent {
	if apiKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, AI features are disabled")
	}
	return &Agent{apiKey: apiKey}
}

// GenerateProductDescription asks the fast model tier for a short marketing
// blurb. Returns a fixed fallback string on any failure.
func (a *Agent) GenerateProductDescription(ctx context.Context, productName string) string {
	if a.apiKey == "" {
		return MsgServiceUnavailable
	}

	prompt := fmt.Sprintf(`Generate a short, catchy, and professional product description for: %q. Keep it under 15 words.`, productName)
	text, err := a.generate(ctx, "gemini-2.5-flash", "", prompt)
	if err != nil {
		log.Printf("Error generating product description: %v", err)
		return MsgDescriptionFailed
	}
	return text
}

// GetSalesInsights asks the pro model tier to analyze a serialized sales
// summary. Returns a fixed fallback string on any failure.
func (a *Agent) GetSalesInsights(ctx context.Context, salesData string) string {
	if a.apiKey == "" {
		return MsgServiceUnavailable
	}

	prompt := fmt.Sprintf("Analyze the following sales data and provide 3 actionable insights to improve sales. Be concise. Data: %s", salesData)
	system := "You are a business analyst expert in retail and wholesale markets."
	text, err := a.generate(ctx, "gemini-2.5-pro", system, prompt)
	if err != nil {
		log.Printf("Error generating sales insights: %v", err)
		return MsgInsightsFailed
	}
	return text
}

func (a *Agent) generate(ctx context.Context, modelName, systemInstruction, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel(modelName)
	if systemInstruction != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				return string(txt), nil
			}
		}
	}
	return "", fmt.Errorf("model %s returned no text", modelName)
}
