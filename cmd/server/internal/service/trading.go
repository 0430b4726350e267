package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shubham-shewale/stock-trading/cmd/server/internal/repository"
	"github.com/shubham-shewale/stock-trading/pkg/stocktradingpb"
)

const (
	// SubscribeStockPrice emits this many updates, one per tick
	subscribeUpdates  = 10
	subscribeInterval = 1 * time.Second
	maxRandomPrice    = 200
)

// TradingService implements all four call shapes of StockTradingService.
// The catalog is the only shared state and is immutable; everything else
// lives on the stack of the call handling it.
type TradingService struct {
	stocktradingpb.UnimplementedStockTradingServiceServer

	logger *zap.Logger
	store  repository.StockStore
	rand   Rand
	clock  Clock
}

func NewTradingService(logger *zap.Logger, store repository.StockStore, rnd Rand, clock Clock) *TradingService {
	return &TradingService{
		logger: logger,
		store:  store,
		rand:   rnd,
		clock:  clock,
	}
}

// GetStockPrice answers a single quote from the catalog.
func (s *TradingService) GetStockPrice(ctx context.Context, req *stocktradingpb.StockRequest) (*stocktradingpb.StockResponse, error) {
	stock, ok := s.store.FindByName(req.GetStockSymbol())
	if !ok {
		s.logger.Warn("Stock lookup miss", zap.String("symbol", req.GetStockSymbol()))
		return nil, status.Errorf(codes.NotFound, "stock not found: %s", req.GetStockSymbol())
	}

	return &stocktradingpb.StockResponse{
		StockSymbol: stock.Name,
		Price:       float64(stock.Price),
		Timestamp:   stock.Timestamp,
	}, nil
}

// SubscribeStockPrice streams paced random price updates for the requested
// symbol. It stops within one tick when the client cancels or the deadline
// passes.
func (s *TradingService) SubscribeStockPrice(req *stocktradingpb.StockRequest, stream stocktradingpb.StockTradingService_SubscribeStockPriceServer) error {
	symbol := req.GetStockSymbol()
	ctx := stream.Context()

	s.logger.Info("Price subscription started", zap.String("symbol", symbol))

	for i := 0; i < subscribeUpdates; i++ {
		update := &stocktradingpb.StockResponse{
			StockSymbol: symbol,
			Price:       s.rand.Float64() * maxRandomPrice,
			Timestamp:   s.clock.Now().UTC().Format(time.RFC3339Nano),
		}

		if err := stream.Send(update); err != nil {
			s.logger.Error("Price update send failed", zap.String("symbol", symbol), zap.Error(err))
			return err
		}

		select {
		case <-ctx.Done():
			s.logger.Info("Price subscription cancelled", zap.String("symbol", symbol), zap.Error(ctx.Err()))
			return ctx.Err()
		case <-s.clock.After(subscribeInterval):
		}
	}

	s.logger.Info("Price subscription completed", zap.String("symbol", symbol))
	return nil
}

// BulkStockOrder tallies a stream of orders and answers with one summary.
// Counters are per-call; every received order counts as successful and
// contributes price*price to the total amount.
func (s *TradingService) BulkStockOrder(stream stocktradingpb.StockTradingService_BulkStockOrderServer) error {
	var totalOrders, successCount, totalAmount int32

	for {
		order, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			summary := &stocktradingpb.OrderSummary{
				TotalOrders:  totalOrders,
				SuccessCount: successCount,
				TotalAmount:  totalAmount,
			}
			s.logger.Info("Bulk order stream completed", zap.Int32("total_orders", totalOrders), zap.Int32("total_amount", totalAmount))
			return stream.SendAndClose(summary)
		}
		if err != nil {
			s.logger.Error("Unable to process bulk order stream", zap.Error(err))
			return err
		}

		totalOrders++
		successCount++
		totalAmount += order.GetPrice() * order.GetPrice()

		s.logger.Info("Received order",
			zap.String("order_id", order.GetOrderId()),
			zap.String("symbol", order.GetStockSymbol()),
			zap.String("type", order.GetOrderType()),
			zap.Int32("price", order.GetPrice()),
			zap.Int32("quantity", order.GetQuantity()))
	}
}

// LiveTrading acknowledges every incoming order with one TradeStatus, in
// receipt order. Orders with a non-positive price are rejected in the status,
// not at the RPC level.
func (s *TradingService) LiveTrading(stream stocktradingpb.StockTradingService_LiveTradingServer) error {
	for {
		order, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			s.logger.Error("Error in live trading stream", zap.Error(err))
			return err
		}

		s.logger.Info("Received live trade order",
			zap.String("order_id", order.GetOrderId()),
			zap.String("symbol", order.GetStockSymbol()),
			zap.Int32("price", order.GetPrice()))

		statusMessage := fmt.Sprintf("Order for %s processed successfully.", order.GetStockSymbol())
		if order.GetPrice() <= 0 {
			statusMessage = "Failed - Invalid Price"
		}

		ack := &stocktradingpb.TradeStatus{
			OrderId: order.GetOrderId(),
			Status:  statusMessage,
			Message: fmt.Sprintf("Order ID: %s, Status: %s", order.GetOrderId(), statusMessage),
		}

		if err := stream.Send(ack); err != nil {
			s.logger.Error("Trade status send failed", zap.String("order_id", order.GetOrderId()), zap.Error(err))
			return err
		}
	}
}
