package summarizer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/tranminhduc4802/cardflow/internal/logger"
)

const cardPrompt = `You are summarizing one segment of a video transcript for a highlight card.
Write a single sentence, at most 25 words, stating what happens in the segment.
No preamble, no quotes, no markdown.

Transcript segment:
---
%s
---`

type implGemini struct {
	apiKeys []string
	model   string
	logger  logger.Logger

	// mu guards currentKey; Summarize runs from concurrent per-card
	// goroutines.
	mu         sync.Mutex
	currentKey int
}

// NewGemini creates a Summarizer backed by the Gemini API, rotating through
// the supplied keys on quota errors.
func NewGemini(apiKeys []string, model string, log logger.Logger) (Summarizer, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("no API keys supplied")
	}
	return &implGemini{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}, nil
}

// Summarize sends the segment text to Gemini. Rotates API keys on 429 /
// quota errors.
func (s *implGemini) Summarize(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(cardPrompt, text)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key, idx := s.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var out string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					out += part.Text
				}
			}
			if out = strings.TrimSpace(out); out != "" {
				return out, nil
			}
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implGemini) key() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiKeys[s.currentKey], s.currentKey
}

func (s *implGemini) rotateKey() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
