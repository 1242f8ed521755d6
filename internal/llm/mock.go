package llm

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content string
	Usage   Usage
	Err     error

	// Delay holds the response back, honoring context cancellation.
	Delay time.Duration
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	name      string
	responses []MockResponse
	fallback  func(Request) string
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{name: "mock", responses: responses}
}

// Named changes the backend name the mock registers under.
func (m *MockProvider) Named(name string) *MockProvider {
	m.name = name
	return m
}

// WithFallback makes the mock answer with fn once the queue is empty.
func (m *MockProvider) WithFallback(fn func(Request) string) *MockProvider {
	m.fallback = fn
	return m
}

// Generate returns the next canned response. With an empty queue and no
// fallback it fails with a transient error.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)

	var resp MockResponse
	switch {
	case len(m.responses) > 0:
		resp = m.responses[0]
		m.responses = m.responses[1:]
	case m.fallback != nil:
		resp = MockResponse{Content: m.fallback(req)}
	default:
		m.mu.Unlock()
		return nil, &ModelError{Kind: KindTransient, Err: fmt.Errorf("mock: no responses queued")}
	}
	m.mu.Unlock()

	if resp.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(resp.Delay):
		}
	}

	if resp.Err != nil {
		return nil, resp.Err
	}

	model := req.Model
	if model == "" {
		model = "mock"
	}
	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      model,
		Backend:    m.name,
		StopReason: "end",
	}, nil
}

// Name returns the backend name, "mock" by default.
func (m *MockProvider) Name() string {
	return m.name
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// CalledModels returns the model of every recorded call, in order.
func (m *MockProvider) CalledModels() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		out[i] = c.Model
	}
	return out
}

var demoDaysRe = regexp.MustCompile(`(\d+)-day`)

// DemoPlan answers a schedule prompt with a plain plan of the requested
// length. It backs the mock backend used by --mock runs.
func DemoPlan(req Request) string {
	var prompt string
	if len(req.Messages) > 0 {
		prompt = req.Messages[len(req.Messages)-1].Content
	}
	days := 7
	if m := demoDaysRe.FindStringSubmatch(prompt); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			days = n
		}
	}

	var b strings.Builder
	for d := 1; d <= days; d++ {
		fmt.Fprintf(&b, "Day %d:\n", d)
		fmt.Fprintf(&b, "Title: Practice block %d\n", d)
		b.WriteString("Key Points:\n- Review yesterday's notes\n- Work one focused session\n")
		fmt.Fprintf(&b, "Duration: %d minutes\n", 30+5*(d%4))
		b.WriteString("Motivation: Small steps compound.\n\n")
	}
	return b.String()
}
