package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/goodnatureofminers/nameregistry-backend/internal/metrics"
	"github.com/goodnatureofminers/nameregistry-backend/internal/registry"
	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/chain"
	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/eventlog"
	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/repository/clickhouse"
	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/repository/memory"
	"github.com/goodnatureofminers/nameregistry-backend/internal/transport"
)

type config struct {
	Addr          string `long:"addr" env:"NAMEREGISTRY_ADDR" description:"gRPC listen addr" default:":8000"`
	RestAddr      string `long:"rest-addr" env:"NAMEREGISTRY_REST_ADDR" description:"rest listen addr" default:":8001"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"NAMEREGISTRY_CLICKHOUSE_DSN" description:"ClickHouse DSN, state is kept in memory when empty"`

	Owner           string        `long:"owner" env:"NAMEREGISTRY_OWNER" description:"address allowed to withdraw fees" required:"true"`
	PerCharacterFee model.Wei     `long:"per-character-fee" env:"NAMEREGISTRY_PER_CHARACTER_FEE" description:"fee per name byte in wei" default:"1000000000000000"`
	Deposit         model.Wei     `long:"deposit" env:"NAMEREGISTRY_DEPOSIT" description:"refundable deposit in wei" default:"10000000000000000"`
	MaxGasPrice     model.Wei     `long:"max-gas-price" env:"NAMEREGISTRY_MAX_GAS_PRICE" description:"gas price ceiling for commit and reveal in wei" default:"50000000000"`
	LockPeriod      time.Duration `long:"lock-period" env:"NAMEREGISTRY_LOCK_PERIOD" description:"registration lifetime" default:"8760h"`
	BlockInterval   time.Duration `long:"block-interval" env:"NAMEREGISTRY_BLOCK_INTERVAL" description:"block production interval" default:"12s"`

	EventBatchSize        int           `long:"event-batch-size" env:"NAMEREGISTRY_EVENT_BATCH_SIZE" description:"events per insert" default:"500"`
	EventFlushInterval    time.Duration `long:"event-flush-interval" env:"NAMEREGISTRY_EVENT_FLUSH_INTERVAL" description:"max delay before queued events are written" default:"1s"`
	EventFlushesPerSecond int           `long:"event-flushes-per-second" env:"NAMEREGISTRY_EVENT_FLUSHES_PER_SECOND" description:"event insert rate limit" default:"20"`
}

// stateStore persists both the registry state and its event log.
type stateStore interface {
	registry.Store
	eventlog.Repository
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("name registry failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	params, err := newParams(cfg)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(cfg.ClickhouseDSN, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("close store", zap.Error(err))
		}
	}()

	writer, err := eventlog.NewWriter(store, metrics.NewEventWriter(), logger.Named("event_writer"), eventlog.Config{
		BatchSize:        cfg.EventBatchSize,
		FlushInterval:    cfg.EventFlushInterval,
		FlushesPerSecond: cfg.EventFlushesPerSecond,
	})
	if err != nil {
		return fmt.Errorf("init event writer: %w", err)
	}
	// Events of calls still in flight during shutdown are flushed by Stop.
	writer.Start(context.WithoutCancel(ctx))
	defer writer.Stop()

	reg, err := registry.New(params, store, writer, metrics.NewRegistry(), logger.Named("registry"))
	if err != nil {
		return fmt.Errorf("init registry: %w", err)
	}
	if err := reg.Load(ctx); err != nil {
		return err
	}

	producer, err := chain.NewProducer(reg.Head(), cfg.BlockInterval, metrics.NewBlockProducer(), logger.Named("block_producer"))
	if err != nil {
		return fmt.Errorf("init block producer: %w", err)
	}
	go func() {
		if err := producer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("block producer stopped", zap.Error(err))
		}
	}()

	handler, err := transport.NewRegistryHandler(reg, producer, logger.Named("handler"))
	if err != nil {
		return fmt.Errorf("init handler: %w", err)
	}

	interceptors := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(interceptors...)),
	)
	transport.RegisterRegistryServiceServer(grpcServer, handler)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("grpc server stopped", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial grpc server: %w", err)
	}
	defer func() {
		_ = conn.Close()
	}()

	gw := gwruntime.NewServeMux()
	if err := transport.NewGateway(transport.NewRegistryServiceClient(conn), logger.Named("gateway")).Register(gw); err != nil {
		return fmt.Errorf("register gateway: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", cfg.RestAddr),
		zap.String("grpc_addr", cfg.Addr),
		zap.String("owner", params.Owner.Hex()))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

func newParams(cfg config) (model.Params, error) {
	if !common.IsHexAddress(cfg.Owner) {
		return model.Params{}, fmt.Errorf("invalid owner address %q", cfg.Owner)
	}
	params := model.Params{
		Owner:           common.HexToAddress(cfg.Owner),
		PerCharacterFee: cfg.PerCharacterFee.Int,
		Deposit:         cfg.Deposit.Int,
		LockPeriod:      cfg.LockPeriod,
		MaxGasPrice:     cfg.MaxGasPrice.Int,
	}
	if err := params.Validate(); err != nil {
		return model.Params{}, err
	}
	return params, nil
}

func openStore(dsn string, logger *zap.Logger) (stateStore, func() error, error) {
	if dsn == "" {
		logger.Warn("ClickHouse DSN is empty, registry state is kept in memory only")
		return memory.NewRepository(), func() error { return nil }, nil
	}
	repo, err := clickhouse.NewRepository(dsn, metrics.NewClickhouseRepository())
	if err != nil {
		return nil, nil, fmt.Errorf("init clickhouse repository: %w", err)
	}
	return repo, repo.Close, nil
}
