package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/shubham-shewale/stock-trading/pkg/stocktradingpb"
)

// TradingClient is the slice of the driver the facade needs
type TradingClient interface {
	GetStockPrice(ctx context.Context, symbol string) (*stocktradingpb.StockResponse, error)
	SubscribeStockPrice(ctx context.Context, symbol string) error
	PlaceBulkStockOrder(ctx context.Context) (*stocktradingpb.OrderSummary, error)
	StartTrading(ctx context.Context) error
}

type Handler struct {
	logger *zap.Logger
	client TradingClient
}

func NewHandler(logger *zap.Logger, client TradingClient) *Handler {
	return &Handler{logger: logger, client: client}
}

// Register wires the four facade routes onto the router
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/stock-price/:name", h.getStockPrice)
	r.GET("/stock/subscribe/:name", h.subscribeStock)
	r.GET("/stock/order", h.placeBulkOrder)
	r.GET("/stock/live", h.liveTrading)
}

func (h *Handler) getStockPrice(c *gin.Context) {
	name := c.Param("name")

	resp, err := h.client.GetStockPrice(c.Request.Context(), name)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found", "symbol": name})
			return
		}
		h.logger.Error("Unary call failed", zap.String("symbol", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Protobuf JSON format, same shape the wire message has
	body, err := protojson.Marshal(resp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

func (h *Handler) subscribeStock(c *gin.Context) {
	name := c.Param("name")

	// Background context: the subscription outlives this request
	if err := h.client.SubscribeStockPrice(context.Background(), name); err != nil {
		h.logger.Error("Subscription failed to start", zap.String("symbol", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "subscribed", "symbol": name})
}

func (h *Handler) placeBulkOrder(c *gin.Context) {
	summary, err := h.client.PlaceBulkStockOrder(c.Request.Context())
	if err != nil {
		h.logger.Error("Bulk order failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	body, err := protojson.Marshal(summary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

func (h *Handler) liveTrading(c *gin.Context) {
	if err := h.client.StartTrading(c.Request.Context()); err != nil {
		h.logger.Error("Live trading session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}
