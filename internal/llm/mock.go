package llm

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockGenerator.
type MockResponse struct {
	Text string
	Err  error
}

// MockGenerator is a deterministic Generator for testing. It returns
// canned responses in FIFO order and records every request it sees.
type MockGenerator struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

func NewMockGenerator(responses ...MockResponse) *MockGenerator {
	return &MockGenerator{responses: responses}
}

// Generate returns the next canned response, or a *GenerationError when
// the queue is empty.
func (m *MockGenerator) Generate(_ context.Context, req Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return "", &GenerationError{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Text, nil
}

// AddResponse appends a canned response to the queue.
func (m *MockGenerator) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
