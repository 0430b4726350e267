package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shubham-shewale/stock-trading/cmd/client/internal/api"
	"github.com/shubham-shewale/stock-trading/pkg/stocktradingpb"
)

type mockTradingClient struct {
	subscribed []string
	liveRuns   int
	failUnary  bool
}

func (m *mockTradingClient) GetStockPrice(ctx context.Context, symbol string) (*stocktradingpb.StockResponse, error) {
	if m.failUnary {
		return nil, status.Errorf(codes.NotFound, "stock not found: %s", symbol)
	}
	return &stocktradingpb.StockResponse{StockSymbol: symbol, Price: 20.0, Timestamp: "1324"}, nil
}

func (m *mockTradingClient) SubscribeStockPrice(ctx context.Context, symbol string) error {
	m.subscribed = append(m.subscribed, symbol)
	return nil
}

func (m *mockTradingClient) PlaceBulkStockOrder(ctx context.Context) (*stocktradingpb.OrderSummary, error) {
	return &stocktradingpb.OrderSummary{TotalOrders: 3, SuccessCount: 3, TotalAmount: 7802500}, nil
}

func (m *mockTradingClient) StartTrading(ctx context.Context) error {
	m.liveRuns++
	return nil
}

func setupRouter(client api.TradingClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api.NewHandler(zap.NewNop(), client).Register(router)
	return router
}

func TestGetStockPriceRoute(t *testing.T) {
	router := setupRouter(&mockTradingClient{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stock-price/Tata", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	// protojson uses camelCase field names
	if !strings.Contains(body, `"stockSymbol"`) || !strings.Contains(body, "Tata") {
		t.Errorf("Unexpected body: %s", body)
	}
}

func TestGetStockPriceRoute_NotFound(t *testing.T) {
	router := setupRouter(&mockTradingClient{failUnary: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stock-price/NOPE", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", w.Code)
	}
}

func TestSubscribeRoute(t *testing.T) {
	client := &mockTradingClient{}
	router := setupRouter(client)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stock/subscribe/Tata", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("Expected 202, got %d", w.Code)
	}
	if len(client.subscribed) != 1 || client.subscribed[0] != "Tata" {
		t.Errorf("Expected one subscription to Tata, got %v", client.subscribed)
	}
}

func TestBulkOrderRoute(t *testing.T) {
	router := setupRouter(&mockTradingClient{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stock/order", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "7802500") {
		t.Errorf("Expected total amount in body, got: %s", w.Body.String())
	}
}

func TestLiveRoute(t *testing.T) {
	client := &mockTradingClient{}
	router := setupRouter(client)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stock/live", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if client.liveRuns != 1 {
		t.Errorf("Expected one trading session, got %d", client.liveRuns)
	}
}
