package tests

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/shubham-shewale/stock-trading/cmd/server/internal/repository"
	"github.com/shubham-shewale/stock-trading/cmd/server/internal/service"
	"github.com/shubham-shewale/stock-trading/cmd/server/internal/testutils"
	"github.com/shubham-shewale/stock-trading/pkg/stocktradingpb"
)

const bufSize = 1024 * 1024

func startServer(t *testing.T) stocktradingpb.StockTradingServiceClient {
	t.Helper()

	lis := bufconn.Listen(bufSize)

	svc := service.NewTradingService(
		zap.NewNop(),
		repository.NewStockDB(),
		&testutils.MockRand{ValFloat: 0.25},
		&testutils.MockClock{CurrentTime: time.Unix(0, 0).UTC()},
	)

	grpcServer := grpc.NewServer()
	stocktradingpb.RegisterStockTradingServiceServer(grpcServer, svc)
	go grpcServer.Serve(lis)
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("Failed to dial bufnet: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return stocktradingpb.NewStockTradingServiceClient(conn)
}

func TestEndToEnd_GetStockPrice(t *testing.T) {
	client := startServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := client.GetStockPrice(ctx, &stocktradingpb.StockRequest{StockSymbol: "Tata"})
	if err != nil {
		t.Fatalf("Unary call failed: %v", err)
	}
	if resp.GetStockSymbol() != "Tata" || resp.GetPrice() != 20.0 || resp.GetTimestamp() != "1324" {
		t.Errorf("Unexpected response: %v", resp)
	}

	resp, err = client.GetStockPrice(ctx, &stocktradingpb.StockRequest{StockSymbol: "LAVISH MOTORS"})
	if err != nil {
		t.Fatalf("Case-insensitive call failed: %v", err)
	}
	if resp.GetStockSymbol() != "Lavish Motors" || resp.GetPrice() != 50.0 {
		t.Errorf("Unexpected response: %v", resp)
	}

	_, err = client.GetStockPrice(ctx, &stocktradingpb.StockRequest{StockSymbol: "NOPE"})
	if status.Code(err) != codes.NotFound {
		t.Errorf("Expected NotFound over the wire, got %v", err)
	}
}

func TestEndToEnd_SubscribeStockPrice(t *testing.T) {
	client := startServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.SubscribeStockPrice(ctx, &stocktradingpb.StockRequest{StockSymbol: "Tata"})
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	var updates []*stocktradingpb.StockResponse
	for {
		update, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Recv failed: %v", err)
		}
		updates = append(updates, update)
	}

	if len(updates) != 10 {
		t.Fatalf("Expected 10 updates, got %d", len(updates))
	}
	for i, update := range updates {
		if update.GetStockSymbol() != "Tata" {
			t.Errorf("Update %d: unexpected symbol %s", i, update.GetStockSymbol())
		}
		// MockRand 0.25 -> 0.25 * 200 = 50
		if update.GetPrice() != 50.0 {
			t.Errorf("Update %d: expected price 50.0, got %f", i, update.GetPrice())
		}
	}
}

func TestEndToEnd_BulkStockOrder(t *testing.T) {
	client := startServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.BulkStockOrder(ctx)
	if err != nil {
		t.Fatalf("BulkStockOrder failed: %v", err)
	}

	orders := []*stocktradingpb.StockOrder{
		{OrderId: "1", StockSymbol: "AAPL", OrderType: "BUY", Price: 150, Quantity: 10},
		{OrderId: "2", StockSymbol: "GOOGL", OrderType: "SELL", Price: 2700, Quantity: 5},
		{OrderId: "3", StockSymbol: "TSLA", OrderType: "BUY", Price: 700, Quantity: 8},
	}
	for _, order := range orders {
		if err := stream.Send(order); err != nil {
			t.Fatalf("Send failed: %v", err)
		}
	}

	summary, err := stream.CloseAndRecv()
	if err != nil {
		t.Fatalf("CloseAndRecv failed: %v", err)
	}
	if summary.GetTotalOrders() != 3 || summary.GetSuccessCount() != 3 {
		t.Errorf("Unexpected counts: %v", summary)
	}
	if summary.GetTotalAmount() != 7802500 {
		t.Errorf("Expected total amount 7802500, got %d", summary.GetTotalAmount())
	}
}

func TestEndToEnd_LiveTrading(t *testing.T) {
	client := startServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.LiveTrading(ctx)
	if err != nil {
		t.Fatalf("LiveTrading failed: %v", err)
	}

	orders := []*stocktradingpb.StockOrder{
		{OrderId: "order-0", StockSymbol: "AAPL", OrderType: "BUY", Price: 150, Quantity: 10},
		{OrderId: "order-1", StockSymbol: "AAPL", OrderType: "BUY", Price: 160, Quantity: 11},
		{OrderId: "order-x", StockSymbol: "AAPL", OrderType: "BUY", Price: 0, Quantity: 1},
	}

	for _, order := range orders {
		if err := stream.Send(order); err != nil {
			t.Fatalf("Send failed: %v", err)
		}
		ack, err := stream.Recv()
		if err != nil {
			t.Fatalf("Recv failed: %v", err)
		}
		if ack.GetOrderId() != order.GetOrderId() {
			t.Errorf("Expected ack for %s, got %s", order.GetOrderId(), ack.GetOrderId())
		}
		if order.GetPrice() <= 0 {
			if ack.GetStatus() != "Failed - Invalid Price" {
				t.Errorf("Expected invalid price status, got %q", ack.GetStatus())
			}
		} else if ack.GetStatus() != "Order for AAPL processed successfully." {
			t.Errorf("Unexpected status %q", ack.GetStatus())
		}
	}

	if err := stream.CloseSend(); err != nil {
		t.Fatalf("CloseSend failed: %v", err)
	}
	if _, err := stream.Recv(); !errors.Is(err, io.EOF) {
		t.Errorf("Expected clean stream completion, got %v", err)
	}
}
