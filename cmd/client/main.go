package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/shubham-shewale/stock-trading/cmd/client/internal/api"
	"github.com/shubham-shewale/stock-trading/cmd/client/internal/trading"
	"github.com/shubham-shewale/stock-trading/pkg/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	logger, err := config.NewLogger(cfg.App)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	conn, err := grpc.NewClient(cfg.Client.ServerAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Fatal("Failed to create gRPC client", zap.String("addr", cfg.Client.ServerAddr), zap.Error(err))
	}
	defer conn.Close()

	client := trading.NewClient(conn, logger, trading.RealClock{})
	handler := api.NewHandler(logger, client)

	router := gin.Default()
	handler.Register(router)

	srv := &http.Server{Addr: cfg.Client.HTTPAddr, Handler: router}

	go func() {
		logger.Info("Client Facade Started", zap.String("http_addr", cfg.Client.HTTPAddr), zap.String("server_addr", cfg.Client.ServerAddr))
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("HTTP Error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutdown signal received, stopping facade...")
	srv.Shutdown(context.Background())
	logger.Info("Client exited cleanly")
}
