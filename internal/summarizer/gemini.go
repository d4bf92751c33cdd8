package summarizer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

const summaryPrompt = `You summarize meeting and voice-note transcripts.
Write a short summary in plain prose (at most five sentences) in the language of the transcript.
Keep decisions, action items and names. Do not invent facts.

Transcript:
---
%s
---`

type generateFunc func(ctx context.Context, apiKey, model, prompt string) (string, error)

type geminiSource struct {
	apiKeys    []string
	model      string
	generate   generateFunc
	mu         sync.Mutex
	currentKey int
}

// NewGemini returns a Source that asks Gemini for an abstractive summary,
// rotating through apiKeys on quota errors. It returns nil when no keys are set.
func NewGemini(apiKeys []string, model string) Source {
	if len(apiKeys) == 0 {
		return nil
	}
	return &geminiSource{
		apiKeys:  apiKeys,
		model:    model,
		generate: generateContent,
	}
}

func (g *geminiSource) Name() string { return SourceGemini }

// Summarize sends the transcript to Gemini and returns the summary text.
func (g *geminiSource) Summarize(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", ErrSkipped
	}
	prompt := fmt.Sprintf(summaryPrompt, req.Text)

	var lastErr error
	for range len(g.apiKeys) {
		key := g.key()

		text, err := g.generate(ctx, key, g.model, prompt)
		if err != nil {
			if isQuotaError(err) {
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}
		return text, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *geminiSource) key() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apiKeys[g.currentKey]
}

func (g *geminiSource) rotateKey() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func generateContent(ctx context.Context, apiKey, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text.WriteString(part.Text)
			}
		}
		return text.String(), nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
