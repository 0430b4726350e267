package testutils

import (
	"context"
	"io"
	"time"

	"google.golang.org/grpc/metadata"

	"github.com/shubham-shewale/stock-trading/pkg/stocktradingpb"
)

// MockClock advances instantly on After so paced loops run without waiting.
// Set Block to make After hang forever (for cancellation tests).
type MockClock struct {
	CurrentTime time.Time
	Block       bool
}

func (m *MockClock) Now() time.Time { return m.CurrentTime }

func (m *MockClock) After(d time.Duration) <-chan time.Time {
	if m.Block {
		return nil // nil channel blocks forever
	}
	m.CurrentTime = m.CurrentTime.Add(d)
	ch := make(chan time.Time, 1)
	ch <- m.CurrentTime
	return ch
}

type MockRand struct {
	ValFloat float64
}

func (m *MockRand) Float64() float64 { return m.ValFloat }

// MockServerStream satisfies grpc.ServerStream for handler-level tests
type MockServerStream struct {
	Ctx context.Context
}

func (m *MockServerStream) SetHeader(metadata.MD) error  { return nil }
func (m *MockServerStream) SendHeader(metadata.MD) error { return nil }
func (m *MockServerStream) SetTrailer(metadata.MD)       {}
func (m *MockServerStream) SendMsg(interface{}) error    { return nil }
func (m *MockServerStream) RecvMsg(interface{}) error    { return nil }

func (m *MockServerStream) Context() context.Context {
	if m.Ctx != nil {
		return m.Ctx
	}
	return context.Background()
}

type MockSubscribeStream struct {
	MockServerStream
	Sent    []*stocktradingpb.StockResponse
	SendErr error
}

func (m *MockSubscribeStream) Send(r *stocktradingpb.StockResponse) error {
	if m.SendErr != nil {
		return m.SendErr
	}
	m.Sent = append(m.Sent, r)
	return nil
}

// MockBulkOrderStream replays Incoming, then RecvErr if set, else io.EOF
type MockBulkOrderStream struct {
	MockServerStream
	Incoming []*stocktradingpb.StockOrder
	RecvErr  error
	Summary  *stocktradingpb.OrderSummary

	next int
}

func (m *MockBulkOrderStream) Recv() (*stocktradingpb.StockOrder, error) {
	if m.next < len(m.Incoming) {
		order := m.Incoming[m.next]
		m.next++
		return order, nil
	}
	if m.RecvErr != nil {
		return nil, m.RecvErr
	}
	return nil, io.EOF
}

func (m *MockBulkOrderStream) SendAndClose(s *stocktradingpb.OrderSummary) error {
	m.Summary = s
	return nil
}

// MockLiveTradingStream replays Incoming and records every ack sent back
type MockLiveTradingStream struct {
	MockServerStream
	Incoming []*stocktradingpb.StockOrder
	RecvErr  error
	Statuses []*stocktradingpb.TradeStatus

	next int
}

func (m *MockLiveTradingStream) Recv() (*stocktradingpb.StockOrder, error) {
	if m.next < len(m.Incoming) {
		order := m.Incoming[m.next]
		m.next++
		return order, nil
	}
	if m.RecvErr != nil {
		return nil, m.RecvErr
	}
	return nil, io.EOF
}

func (m *MockLiveTradingStream) Send(s *stocktradingpb.TradeStatus) error {
	m.Statuses = append(m.Statuses, s)
	return nil
}
