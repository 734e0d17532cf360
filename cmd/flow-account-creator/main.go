package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/flow-kms-client/internal/flow/rest"
	"github.com/goodnatureofminers/flow-kms-client/internal/kms"
	"github.com/goodnatureofminers/flow-kms-client/internal/metrics"
	"github.com/goodnatureofminers/flow-kms-client/internal/pkg/flowrest"
	"github.com/goodnatureofminers/flow-kms-client/internal/service"
)

type config struct {
	Network     rest.Network  `long:"network" env:"FLOW_KMS_NETWORK" description:"well-known network" choice:"emulator" choice:"testnet" choice:"mainnet" default:"emulator"`
	AccessURL   string        `long:"access-url" env:"FLOW_KMS_ACCESS_URL" description:"access node REST URL, overrides --network"`
	HTTPTimeout time.Duration `long:"http-timeout" env:"FLOW_KMS_HTTP_TIMEOUT" description:"HTTP timeout for access node requests" default:"30s"`
	RPS         int           `long:"rps" env:"FLOW_KMS_RPS" description:"max access node requests per second, 0 disables throttling" default:"10"`

	GCPProject         string `long:"gcp-project" env:"FLOW_KMS_GCP_PROJECT" description:"GCP project holding the key ring"`
	GCPLocation        string `long:"gcp-location" env:"FLOW_KMS_GCP_LOCATION" description:"key ring location" default:"global"`
	GCPKeyRing         string `long:"gcp-key-ring" env:"FLOW_KMS_GCP_KEY_RING" description:"key ring name"`
	GCPKey             string `long:"gcp-key" env:"FLOW_KMS_GCP_KEY" description:"crypto key name"`
	GCPKeyVersion      string `long:"gcp-key-version" env:"FLOW_KMS_GCP_KEY_VERSION" description:"crypto key version" default:"1"`
	GCPCredentialsFile string `long:"gcp-credentials-file" env:"GOOGLE_APPLICATION_CREDENTIALS" description:"service account credentials file"`
	Unsigned           bool   `long:"unsigned" env:"FLOW_KMS_UNSIGNED" description:"submit without signatures, only accepted by an emulator skipping signature checks"`

	ServiceAddress  string `long:"service-address" env:"FLOW_KMS_SERVICE_ADDRESS" description:"proposer, payer and authorizer account" required:"true"`
	ServiceKeyIndex uint32 `long:"service-key-index" env:"FLOW_KMS_SERVICE_KEY_INDEX" description:"index of the KMS key on the service account" default:"0"`
	GasLimit        uint64 `long:"gas-limit" env:"FLOW_KMS_GAS_LIMIT" description:"transaction gas limit" default:"9999"`

	PollInitial  time.Duration `long:"poll-initial" env:"FLOW_KMS_POLL_INITIAL" description:"first wait before querying transaction status" default:"200ms"`
	PollStep     time.Duration `long:"poll-step" env:"FLOW_KMS_POLL_STEP" description:"wait increase per status query" default:"200ms"`
	PollMax      time.Duration `long:"poll-max" env:"FLOW_KMS_POLL_MAX" description:"cap on a single wait, 0 is uncapped"`
	PollDeadline time.Duration `long:"poll-deadline" env:"FLOW_KMS_POLL_DEADLINE" description:"give up waiting for sealing after this long, 0 waits forever"`

	MetricsAddr string   `long:"metrics-addr" env:"FLOW_KMS_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	PublicKeys  []string `long:"public-key" description:"hex encoded P-256 public key to add to the new account, repeatable"`
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

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("flow account creator failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	accessURL := cfg.AccessURL
	if accessURL == "" {
		endpoint, err := rest.Endpoint(cfg.Network)
		if err != nil {
			return err
		}
		accessURL = endpoint
	}
	restClient, err := rest.NewClient(accessURL, cfg.HTTPTimeout, cfg.RPS, logger)
	if err != nil {
		return fmt.Errorf("init access client: %w", err)
	}
	access := flowrest.NewObservedClient(restClient, metrics.NewRESTClient(string(cfg.Network)))

	var signer service.Signer
	if !cfg.Unsigned {
		kmsSigner, closeKMS, err := newSigner(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer closeKMS()
		signer = kmsSigner
	}

	svc, err := service.NewClient(
		access,
		signer,
		metrics.NewTransactionSubmitter(string(cfg.Network)),
		service.Config{
			ServiceAddress:  cfg.ServiceAddress,
			ServiceKeyIndex: cfg.ServiceKeyIndex,
			GasLimit:        cfg.GasLimit,
			Poll: service.PollPolicy{
				InitialBackoff: cfg.PollInitial,
				Step:           cfg.PollStep,
				MaxBackoff:     cfg.PollMax,
				Deadline:       cfg.PollDeadline,
			},
		},
		logger,
	)
	if err != nil {
		return err
	}

	account, err := svc.CreateAccount(ctx, cfg.PublicKeys)
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	logger.Info("account ready",
		zap.String("address", account.Address),
		zap.Uint64("balance", account.Balance),
		zap.Int("keys", len(account.Keys)))
	return nil
}

func newSigner(ctx context.Context, cfg config, logger *zap.Logger) (*kms.Signer, func(), error) {
	if cfg.GCPProject == "" || cfg.GCPKeyRing == "" || cfg.GCPKey == "" {
		return nil, nil, errors.New("gcp project, key ring and key are required unless --unsigned is set")
	}

	grpcPrometheus.EnableClientHandlingTimeHistogram()
	grpcZap.ReplaceGrpcLoggerV2(logger.Named("grpc"))

	client, err := kms.NewGCPClient(ctx, cfg.GCPCredentialsFile, logger)
	if err != nil {
		return nil, nil, err
	}
	closeClient := func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close kms client", zap.Error(err))
		}
	}

	keyVersion := kms.KeyVersionName(cfg.GCPProject, cfg.GCPLocation, cfg.GCPKeyRing, cfg.GCPKey, cfg.GCPKeyVersion)
	signer, err := kms.NewSigner(client, keyVersion, kms.CRC32C(), metrics.NewKMSSigner(), logger.Named("kms"))
	if err != nil {
		closeClient()
		return nil, nil, err
	}

	publicKey, err := signer.FetchPublicKey(ctx)
	if err != nil {
		closeClient()
		return nil, nil, fmt.Errorf("fetch service public key: %w", err)
	}
	logger.Info("using kms key", zap.String("key_version", publicKey.Name), zap.String("pem", publicKey.PEM))

	return signer, closeClient, nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
