// Package genai provides the Gemini generateContent client used by the chat
// relay. Each relay call starts a fresh session seeded with the full
// normalized history; no conversation state is retained between requests.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client calls the Gemini API. It implements domain.ChatProvider.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewClient creates a Gemini client for the configured model.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:  cfg.GeminiAPIKey,
		model:   cfg.GeminiModel,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

// generateRequest is the generateContent API request.
type generateRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}

// generateResponse is the generateContent API response.
type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Session is one conversation seeded with a system prompt and prior turns.
type Session struct {
	client       *Client
	systemPrompt string
	history      []domain.ChatTurn
}

// StartSession opens a session pre-seeded with the system instruction and the
// normalized history. History roles must already be in provider vocabulary
// (user/model) with a user turn first.
func (c *Client) StartSession(systemPrompt string, history []domain.ChatTurn) domain.ChatSession {
	return &Session{
		client:       c,
		systemPrompt: systemPrompt,
		history:      history,
	}
}

// Send submits the current message on top of the seeded history and returns
// the generated reply text.
func (s *Session) Send(ctx context.Context, message string) (string, error) {
	contents := make([]content, 0, len(s.history)+1)
	for _, turn := range s.history {
		contents = append(contents, content{
			Role:  turn.Role,
			Parts: []part{{Text: turn.Content}},
		})
	}
	contents = append(contents, content{
		Role:  domain.ChatRoleUser,
		Parts: []part{{Text: message}},
	})

	reqBody := generateRequest{Contents: contents}
	if s.systemPrompt != "" {
		reqBody.SystemInstruction = &content{Parts: []part{{Text: s.systemPrompt}}}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", s.client.baseURL, s.client.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.client.apiKey)

	resp, err := s.client.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Gemini: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini returned status %d: %s", resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("decoding response: %w, body: %s", err, string(body))
	}
	if genResp.Error != nil {
		return "", fmt.Errorf("Gemini error %d (%s): %s", genResp.Error.Code, genResp.Error.Status, genResp.Error.Message)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in response, body: %s", string(body))
	}
	return genResp.Candidates[0].Content.Parts[0].Text, nil
}
