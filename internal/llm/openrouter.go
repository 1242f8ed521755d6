package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/tidwall/gjson"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// maxResponseBytes caps how much of a completion body is read.
const maxResponseBytes = 8 << 20

// OpenRouterProvider talks to OpenRouter's OpenAI-compatible chat endpoint
// directly. The go-openai client drops the "reasoning" field that free
// reasoning models fill instead of "content", so the response is read raw.
type OpenRouterProvider struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
	siteURL    string
	siteName   string
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	return &OpenRouterProvider{
		httpClient: &http.Client{},
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		siteURL:    cfg.SiteURL,
		siteName:   cfg.SiteName,
	}, nil
}

func (p *OpenRouterProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}

	body, err := json.Marshal(openai.ChatCompletionRequest{
		Model:       model,
		Messages:    buildOpenAIMessages(req),
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	p.setHeaders(httpReq)

	httpResp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, &ModelError{Kind: KindTransient, Err: err}
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, &ModelError{Kind: KindTransient, StatusCode: httpResp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if httpResp.StatusCode != http.StatusOK {
		retryAfter := parseRetryAfter(httpResp.Header.Get("Retry-After"))
		return nil, classifyStatus(httpResp.StatusCode, retryAfter, decodeOpenRouterError(httpResp.StatusCode, raw))
	}

	// OpenRouter reports upstream provider failures inside a 200 body.
	if e := gjson.GetBytes(raw, "error"); e.Exists() {
		code := int(e.Get("code").Int())
		return nil, classifyStatus(code, 0, errors.New(e.Get("message").String()))
	}

	return parseChatCompletion(raw, p.Name())
}

func (p *OpenRouterProvider) Name() string {
	return "openrouter"
}

func (p *OpenRouterProvider) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if p.siteURL != "" {
		req.Header.Set("HTTP-Referer", p.siteURL)
	}
	if p.siteName != "" {
		req.Header.Set("X-Title", p.siteName)
	}
}

// parseChatCompletion extracts text from an OpenAI-shaped completion body,
// preferring message.content, then message.reasoning, then
// message.reasoning_content. Whitespace-only values count as absent.
func parseChatCompletion(raw []byte, backend string) (*Response, error) {
	if !gjson.ValidBytes(raw) {
		return nil, &ModelError{Kind: KindTransient, Err: fmt.Errorf("response is not valid JSON")}
	}

	msg := gjson.GetBytes(raw, "choices.0.message")
	if !msg.Exists() {
		return nil, &ModelError{Kind: KindTransient, Err: fmt.Errorf("no choices in response")}
	}

	var content string
	for _, field := range []string{"content", "reasoning", "reasoning_content"} {
		if v := msg.Get(field).String(); strings.TrimSpace(v) != "" {
			content = v
			break
		}
	}

	stop := "end"
	if gjson.GetBytes(raw, "choices.0.finish_reason").String() == string(openai.FinishReasonLength) {
		stop = "max_tokens"
	}

	usage := gjson.GetBytes(raw, "usage")
	return &Response{
		Content: content,
		Usage: Usage{
			InputTokens:  int(usage.Get("prompt_tokens").Int()),
			OutputTokens: int(usage.Get("completion_tokens").Int()),
			TotalTokens:  int(usage.Get("total_tokens").Int()),
		},
		Model:      gjson.GetBytes(raw, "model").String(),
		Backend:    backend,
		StopReason: stop,
	}, nil
}

func decodeOpenRouterError(status int, raw []byte) error {
	var er openai.ErrorResponse
	if err := json.Unmarshal(raw, &er); err == nil && er.Error != nil && er.Error.Message != "" {
		return fmt.Errorf("openrouter: %s", er.Error.Message)
	}
	return fmt.Errorf("openrouter: HTTP %d", status)
}

// parseRetryAfter reads a Retry-After header given in seconds or as an HTTP date.
func parseRetryAfter(v string) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
