package llm

import "context"

// MockReply is a canned reply for the MockGateway.
type MockReply struct {
	Text string
	Err  error
}

// MockGateway is a deterministic Gateway for tests. It returns canned
// replies in FIFO order and records every request it receives.
type MockGateway struct {
	replies []MockReply
	Calls   []GenerateRequest
}

// NewMockGateway creates a MockGateway with the given canned replies.
func NewMockGateway(replies ...MockReply) *MockGateway {
	return &MockGateway{replies: replies}
}

// Generate returns the next canned reply, or ErrUnavailable once the queue
// is empty.
func (m *MockGateway) Generate(_ context.Context, req GenerateRequest) (*GenerateResponse, error) {
	m.Calls = append(m.Calls, req)

	if len(m.replies) == 0 {
		return nil, ErrUnavailable
	}
	reply := m.replies[0]
	m.replies = m.replies[1:]

	if reply.Err != nil {
		return nil, reply.Err
	}
	return &GenerateResponse{Text: reply.Text, Model: "mock"}, nil
}
