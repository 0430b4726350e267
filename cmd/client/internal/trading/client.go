package trading

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/shubham-shewale/stock-trading/pkg/stocktradingpb"
)

const (
	liveOrderCount    = 5
	liveOrderInterval = 500 * time.Millisecond
)

// Client drives the four call shapes of StockTradingService and logs what
// comes back. It holds no per-call state, so one instance serves concurrent
// triggers.
type Client struct {
	logger *zap.Logger
	api    stocktradingpb.StockTradingServiceClient
	clock  Clock
}

func NewClient(conn grpc.ClientConnInterface, logger *zap.Logger, clock Clock) *Client {
	return &Client{
		logger: logger,
		api:    stocktradingpb.NewStockTradingServiceClient(conn),
		clock:  clock,
	}
}

// GetStockPrice performs the blocking unary lookup.
func (c *Client) GetStockPrice(ctx context.Context, symbol string) (*stocktradingpb.StockResponse, error) {
	resp, err := c.api.GetStockPrice(ctx, &stocktradingpb.StockRequest{StockSymbol: symbol})
	if err != nil {
		return nil, err
	}

	c.logger.Info("Stock price received",
		zap.String("symbol", resp.GetStockSymbol()),
		zap.Float64("price", resp.GetPrice()),
		zap.String("timestamp", resp.GetTimestamp()))
	return resp, nil
}

// SubscribeStockPrice opens the server stream and returns once it is
// established; updates are drained and logged in the background.
func (c *Client) SubscribeStockPrice(ctx context.Context, symbol string) error {
	stream, err := c.api.SubscribeStockPrice(ctx, &stocktradingpb.StockRequest{StockSymbol: symbol})
	if err != nil {
		return err
	}

	go func() {
		for {
			update, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				c.logger.Info("Stock price live updates completed", zap.String("symbol", symbol))
				return
			}
			if err != nil {
				c.logger.Error("Price subscription error", zap.String("symbol", symbol), zap.Error(err))
				return
			}
			c.logger.Info("Price update",
				zap.String("symbol", update.GetStockSymbol()),
				zap.Float64("price", update.GetPrice()))
		}
	}()

	return nil
}

// PlaceBulkStockOrder streams the fixed demo batch and waits for the summary.
func (c *Client) PlaceBulkStockOrder(ctx context.Context) (*stocktradingpb.OrderSummary, error) {
	stream, err := c.api.BulkStockOrder(ctx)
	if err != nil {
		return nil, err
	}

	orders := []*stocktradingpb.StockOrder{
		{OrderId: "1", StockSymbol: "AAPL", OrderType: "BUY", Price: 150, Quantity: 10},
		{OrderId: "2", StockSymbol: "GOOGL", OrderType: "SELL", Price: 2700, Quantity: 5},
		{OrderId: "3", StockSymbol: "TSLA", OrderType: "BUY", Price: 700, Quantity: 8},
	}

	for _, order := range orders {
		if err := stream.Send(order); err != nil {
			return nil, err
		}
	}

	summary, err := stream.CloseAndRecv()
	if err != nil {
		c.logger.Error("Order summary error", zap.Error(err))
		return nil, err
	}

	c.logger.Info("Order summary received",
		zap.Int32("total_orders", summary.GetTotalOrders()),
		zap.Int32("success_count", summary.GetSuccessCount()),
		zap.Int32("total_amount", summary.GetTotalAmount()))
	return summary, nil
}

// StartTrading runs one bidirectional session: five paced orders out,
// one TradeStatus logged per order, then waits for the server side to finish.
func (c *Client) StartTrading(ctx context.Context) error {
	stream, err := c.api.LiveTrading(ctx)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			ack, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				c.logger.Info("Live trading stream completed")
				return
			}
			if err != nil {
				c.logger.Error("Error in live trading", zap.Error(err))
				return
			}
			c.logger.Info("Server response",
				zap.String("order_id", ack.GetOrderId()),
				zap.String("status", ack.GetStatus()),
				zap.String("message", ack.GetMessage()))
		}
	}()

	for i := 0; i < liveOrderCount; i++ {
		order := &stocktradingpb.StockOrder{
			OrderId:     fmt.Sprintf("order-%d", i),
			StockSymbol: "AAPL",
			OrderType:   "BUY",
			Price:       int32(150 + i*10),
			Quantity:    int32(10 + i),
		}
		if err := stream.Send(order); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.clock.After(liveOrderInterval):
		}
	}

	if err := stream.CloseSend(); err != nil {
		return err
	}

	<-done
	return nil
}
