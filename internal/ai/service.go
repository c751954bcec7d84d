// Package ai talks to the remote chat-completions endpoint that backs the
// summary-improvement and posting-comparison features. Remote failures are
// fatal for the request; nothing here retries.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"cv-builder/internal/cv"
)

const (
	// DefaultEndpoint is the OpenAI chat completions endpoint.
	DefaultEndpoint = "https://api.openai.com/v1/chat/completions"
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o-mini"
)

type Service struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

func NewService(apiKey, model string) *Service {
	if model == "" {
		model = DefaultModel
	}
	return &Service{
		apiKey:   apiKey,
		model:    model,
		endpoint: DefaultEndpoint,
		client:   &http.Client{Timeout: 120 * time.Second},
	}
}

// ImproveSummary sends free text with the improvement preamble and returns
// the single text response verbatim.
func (s *Service) ImproveSummary(ctx context.Context, text string) (string, error) {
	out, err := s.chat(ctx, []chatMessage{
		{Role: "system", Content: improvePreamble},
		{Role: "user", Content: text},
	}, false)
	if err != nil {
		return "", errors.Wrap(err, "improve summary")
	}
	return out, nil
}

// CompareWithPosting serializes rec into a flat transcript, sends it with
// the posting text, and parses the response as a structured Analysis. A
// malformed upstream response surfaces as a parse failure, nothing more.
func (s *Service) CompareWithPosting(ctx context.Context, rec cv.Record, posting string) (*Analysis, error) {
	out, err := s.chat(ctx, []chatMessage{
		{Role: "system", Content: comparePreamble},
		{Role: "user", Content: compareUserContent(rec, posting)},
	}, true)
	if err != nil {
		return nil, errors.Wrap(err, "compare with posting")
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(out), &analysis); err != nil {
		return nil, errors.Wrapf(err, "failed to parse analysis response: %.200s", out)
	}
	return &analysis, nil
}

func (s *Service) chat(ctx context.Context, messages []chatMessage, jsonMode bool) (string, error) {
	reqBody := chatRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: 0.1,
	}
	if jsonMode {
		reqBody.ResponseFormat = &respFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.Wrap(err, "encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return "", errors.Wrap(err, "create request")
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "completion request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("completion API error: %d", resp.StatusCode)
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrap(err, "decode response")
	}
	if result.Error.Message != "" {
		return "", errors.Errorf("completion error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", errors.New("no response from completion API")
	}
	return result.Choices[0].Message.Content, nil
}
