package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/shubham-shewale/stock-trading/cmd/server/internal/repository"
	"github.com/shubham-shewale/stock-trading/cmd/server/internal/service"
	"github.com/shubham-shewale/stock-trading/pkg/config"
	"github.com/shubham-shewale/stock-trading/pkg/stocktradingpb"
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

	lis, err := net.Listen("tcp", cfg.Server.Port)
	if err != nil {
		logger.Fatal("Failed to listen", zap.String("port", cfg.Server.Port), zap.Error(err))
	}

	db := repository.NewStockDB()
	svc := service.NewTradingService(logger, db, service.RealRand{}, service.RealClock{})

	grpcServer := grpc.NewServer()
	stocktradingpb.RegisterStockTradingServiceServer(grpcServer, svc)
	reflection.Register(grpcServer)

	go func() {
		logger.Info("Server Started", zap.String("port", cfg.Server.Port))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatal("gRPC Serve Error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutdown signal received, stopping server...")
	grpcServer.GracefulStop()
	logger.Info("Server exited cleanly")
}
