package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
)

// systemPrompt frames the assistant for the recommendations panel.
const systemPrompt = "You are a trading research assistant for a retail " +
	"dashboard. Give concise, factual answers about markets, positions, and " +
	"strategies. You never place trades yourself."

// historyLimit caps the rolling conversation window sent with each turn.
const historyLimit = 10

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Chatter answers a single user message given the prior conversation.
type Chatter interface {
	Chat(ctx context.Context, history []Message, userMessage string) (string, error)
}

// Session keeps a rolling chat transcript and delegates to a backend.
type Session struct {
	backend Chatter
	history []Message
}

// NewSession creates a Session over the given backend.
func NewSession(backend Chatter) *Session {
	return &Session{backend: backend}
}

// History returns the transcript so far.
func (s *Session) History() []Message {
	out := make([]Message, len(s.history))
	copy(out, s.history)
	return out
}

// Send asks the backend and appends both turns to the transcript. The
// window sent to the backend is capped at historyLimit messages.
func (s *Session) Send(ctx context.Context, userMessage string) (string, error) {
	userMessage = strings.TrimSpace(userMessage)
	if userMessage == "" {
		return "", fmt.Errorf("empty message")
	}

	window := s.history
	if len(window) > historyLimit {
		window = window[len(window)-historyLimit:]
	}

	reply, err := s.backend.Chat(ctx, window, userMessage)
	if err != nil {
		return "", err
	}

	s.history = append(s.history,
		Message{Role: "user", Content: userMessage},
		Message{Role: "assistant", Content: reply},
	)
	return reply, nil
}

// ProxyChat sends chat turns through the dashboard proxy API.
type ProxyChat struct {
	baseURL    string
	httpClient *http.Client
}

// NewProxyChat creates a proxy-backed Chatter.
func NewProxyChat(baseURL string, timeout time.Duration) *ProxyChat {
	return &ProxyChat{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type proxyChatRequest struct {
	Messages []Message `json:"messages"`
}

type proxyChatResponse struct {
	Reply string `json:"reply"`
	Error string `json:"error,omitempty"`
}

// Chat implements Chatter over the proxy endpoint.
func (p *ProxyChat) Chat(ctx context.Context, history []Message, userMessage string) (string, error) {
	payload := proxyChatRequest{
		Messages: append(append([]Message{}, history...), Message{Role: "user", Content: userMessage}),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/proxy/api/ai/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	var out proxyChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != "" {
			return "", fmt.Errorf("chat failed: %s", out.Error)
		}
		return "", fmt.Errorf("chat failed: status %d", resp.StatusCode)
	}
	return out.Reply, nil
}

// DirectChat sends chat turns straight to Anthropic.
type DirectChat struct {
	client *Client
}

// NewDirectChat creates a Chatter over a direct Anthropic client.
func NewDirectChat(client *Client) *DirectChat {
	return &DirectChat{client: client}
}

// Chat implements Chatter against the Messages API.
func (d *DirectChat) Chat(ctx context.Context, history []Message, userMessage string) (string, error) {
	var messages []anthropic.MessageParam
	for _, m := range history {
		if m.Role == "assistant" {
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		} else {
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(userMessage)))

	resp, err := d.client.inner.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     d.client.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("anthropic chat: %w", err)
	}

	d.client.tracker.Add(resp.Usage.InputTokens, resp.Usage.OutputTokens)

	var reply strings.Builder
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			reply.WriteString(variant.Text)
		}
	}
	return reply.String(), nil
}
